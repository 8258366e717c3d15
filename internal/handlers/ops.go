package handlers

import (
	"net/http"
)

// handleIndex serves the dashboard shell
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, h.staticFS, "index.html")
}

// handleReload re-runs the dataset load and swaps the snapshot wholesale
func (h *Handlers) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.Dataset.Load(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Dataset reloaded")
}

// handleShareQR returns a QR code PNG encoding the dashboard URL
func (h *Handlers) handleShareQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Share.QRImage()
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
