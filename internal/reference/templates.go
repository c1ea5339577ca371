package reference

// pageTemplate is the Go html/template shell for each reference page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - p5.js reference</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      display: flex;
      min-height: 100vh;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      font-size: 15px;
      line-height: 1.6;
      color: #212529;
      background: #ffffff;
    }
    nav {
      width: 220px;
      flex-shrink: 0;
      padding: 24px 16px;
      background: #f1f3f5;
      border-right: 1px solid #dee2e6;
    }
    nav h2 { margin: 0 0 14px; font-size: 15px; color: #495057; }
    nav a {
      display: block;
      padding: 6px 10px;
      border-radius: 5px;
      color: #495057;
      text-decoration: none;
    }
    nav a:hover { background: #e9ecef; }
    nav a.active { background: #e7f5ff; color: #1c7ed6; font-weight: 600; }
    main { flex: 1; max-width: 760px; padding: 32px 40px; }
    h1 { margin-top: 0; }
    code {
      background: #f1f3f5;
      border-radius: 3px;
      padding: 1px 5px;
      font-size: 13px;
    }
    pre { border-radius: 6px; padding: 14px !important; overflow-x: auto; }
    pre code { background: none; padding: 0; }
    table { border-collapse: collapse; width: 100%; margin: 14px 0; }
    th, td { border: 1px solid #dee2e6; padding: 7px 12px; text-align: left; }
    th { background: #f8f9fa; }
    tr:nth-child(even) td { background: #f8f9fa; }
  </style>
</head>
<body>
  <nav>
    <h2>p5.js reference</h2>
    {{range .Pages}}<a href="/reference/{{.Slug}}"{{if eq .Slug $.Active}} class="active"{{end}}>{{.Title}}</a>
    {{end}}
    <a href="/">Back to editor</a>
  </nav>
  <main>
    {{.Content}}
  </main>
</body>
</html>`
