package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"globaljobhunter-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	OverlayPath string
	LoadCfg     func() (config.Config, error)
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	writeJSON(w, cur)
}

// Put validates and persists an updated configuration, then reloads it so
// the stored value always reflects what is on disk. Credentials cannot be
// set this way; they stay env-only.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming config.Config
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}

	// keep the running credentials: the overlay never carries them
	cur := h.CfgVal.Load().(config.Config)
	incoming.Credentials = cur.Credentials

	if err := config.Validate(incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_config", err.Error())
		return
	}
	if err := config.SaveAtomic(h.OverlayPath, incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "save_failed", err.Error())
		return
	}

	saved, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
		return
	}
	h.CfgVal.Store(saved)
	writeJSON(w, saved)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs, _ := filepath.Abs(h.OverlayPath)
	writeJSON(w, map[string]any{"path": abs})
}
