package handler

import (
	"net/http"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/spec"
)

// welcomeMessage greets clients at the root and points them at the docs UI.
const welcomeMessage = "Welcome to the Address API. See /docs for OpenAPI UI."

// docsPage is a minimal Scalar API reference UI. It loads the embedded spec
// from /openapi.yaml, so the page always documents the running binary.
const docsPage = `<!doctype html>
<html>
  <head>
    <title>Address API</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.yaml"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`

// getWelcome handles GET /.
func (s *Server) getWelcome(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

// getHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getOpenAPI handles GET /openapi.yaml, serving the spec embedded at build time.
func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// getDocs handles GET /docs.
func (s *Server) getDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}
