// SPDX-License-Identifier: MIT

// Package server exposes a network over HTTP with gin.
//
// Routes:
//
//	GET  /healthz            liveness
//	GET  /v1/model           layer sizes, activation, parameter count
//	POST /v1/analyze         {"input":[...]}                      -> {"class","output"}
//	POST /v1/train           {"input":[...],"label":l,"rate":r}   -> {"class","output"}
//	POST /v1/weights/save    write the weights file (WithWeightsPath)
//	POST /v1/weights/load    replace the weights from the file
//	GET  /v1/canvas          websocket drawing session
//
// The network is not safe for concurrent use, so the server serialises every
// access behind one mutex. Every response carries an X-Request-ID header; a
// valid uuid sent by the client is echoed, anything else is replaced.
//
// Error bodies are {"error": "..."}. Input-size, label and rate errors map to
// 400, a missing weights file to 404, and a server without a weights path to
// 409.
package server
