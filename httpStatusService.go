package main

import (
	"context"
	"net/http"
)

type httpStatusService struct {
	srv     *http.Server
	handler *apiHandler
}

func (h *httpStatusService) launch(handler *apiHandler, addr string) {
	h.handler = handler
	h.srv = &http.Server{Addr: addr, Handler: handler.router()}
	logger := handler.rt.logger

	// add to the wg
	wg.Add(1)

	// launch the server
	go func(srv *http.Server) {
		defer wg.Done()
		logger.Printf("starting status service on %s", addr)
		err := srv.ListenAndServe()
		if err != http.ErrServerClosed {
			logger.Println(err)
		}
		logger.Println("Exiting status service")
	}(h.srv)
}

func (h *httpStatusService) stop() {
	if h.srv != nil {
		h.srv.Shutdown(context.Background())
	}
}
