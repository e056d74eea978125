package main

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type statusResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
	Mode     string `json:"mode"`
	UptimeMS int64  `json:"uptime_ms"`
}

// apiHandler answers status requests, it reads the mode cell and the
// clock and nothing else
type apiHandler struct {
	rt     runtimeConfig
	secret string
	user   string
	realm  string
}

func newHandler(rt runtimeConfig) *apiHandler {
	return &apiHandler{
		rt:     rt,
		secret: rt.settings.GetString(sHTTPSecret),
		user:   rt.settings.GetString(sHTTPUser),
		realm:  "pithermo",
	}
}

// BasicAuth - provide a middleware to authenticate users, an empty secret
// leaves the service open
func (m *apiHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.secret == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(m.secret)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *apiHandler) getStatus() statusResponse {
	return statusResponse{
		Response: "OK",
		Mode:     m.rt.mode.load().String(),
		UptimeMS: m.rt.uptime().Milliseconds(),
	}
}

func writeAnswer(w http.ResponseWriter, sr statusResponse) {
	output, _ := json.Marshal(sr)
	w.Header().Set("Content-Type", "application/json")
	w.Write(output)
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, m.getStatus())
}

// apiButton is one more qualifying edge
func (m *apiHandler) apiButton(w http.ResponseWriter, r *http.Request) {
	mode := m.rt.mode.advance()
	m.rt.logger.Printf("remote button press, mode is now %v", mode)
	writeAnswer(w, m.getStatus())
}

func (m *apiHandler) apiError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	writeAnswer(w, statusResponse{
		Response: "BAD",
		Error:    "unknown command " + mux.Vars(r)["cmd"],
		Mode:     m.rt.mode.load().String(),
		UptimeMS: m.rt.uptime().Milliseconds(),
	})
}

func (m *apiHandler) router() *mux.Router {
	r := mux.NewRouter()
	// auth middleware
	r.Use(m.BasicAuth)
	r.HandleFunc("/api/status", m.apiStatus).Methods("GET")
	r.HandleFunc("/api/button", m.apiButton).Methods("POST")
	r.HandleFunc("/api/{cmd}", m.apiError)
	return r
}

func startStatusService(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Status"}
	wg.Add(1)
	go runStatusService(rt)
}

func runStatusService(rt runtimeConfig) {
	defer wg.Done()

	handler := newHandler(rt)
	rt.statusSvc.launch(handler, rt.settings.GetString(sHTTPAddr))

	<-rt.comms.quit
	rt.logger.Println("quit from status service")
	rt.statusSvc.stop()
}
