package sketch

// SystemInstruction is sent with every generation request. It pins the model
// to bare p5.js source so the response survives ExtractCode without manual
// cleanup.
const SystemInstruction = "You are a p5.js sketch generator. " +
	"Write a complete p5.js sketch with setup() and draw() functions that matches the user's description. " +
	"Respond only with code, no commentary."
