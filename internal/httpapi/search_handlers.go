package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/events"
	"globaljobhunter-engine/internal/search"
)

type SearchHandler struct {
	Engine *search.Engine
	Hub    *events.Hub
}

// Run executes a federated search and streams progress to the caller as
// server-sent events: jobs batches as sources classify them, per-source
// tuple progress, and a final event with the merged result. Closing the
// connection cancels the search cooperatively; work done so far stays
// cached.
func (h SearchHandler) Run(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid preferences: "+err.Error())
		return
	}
	if len(prefs.SelectedJobs) == 0 && len(prefs.SelectedJobsMultilang) == 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "no professions selected")
		return
	}
	if len(prefs.Countries) == 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "no countries selected")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	reqID := RequestIDFrom(r.Context())
	ctx := r.Context()

	// Engine callbacks fire from adapter goroutines; the stream channel
	// serializes them onto this response.
	stream := make(chan string, 64)
	emit := func(typ string, data any) {
		evt := events.MakeEvent(reqID, typ, 1, data)
		select {
		case stream <- evt:
		default:
			// drop if the client cannot keep up; the final event carries
			// the complete merged list anyway
		}
		h.Hub.Publish(evt)
	}

	prog := search.Progress{
		Batch: func(batch []domain.Vacancy) {
			emit(events.TypeJobs, map[string]any{"jobs": batch})
		},
		Tick: func(src domain.SourceKind, cur, total int) {
			emit(events.TypeProgress, map[string]any{"source": src, "current": cur, "total": total})
		},
		Done: func(src domain.SourceKind, count int, err error) {
			data := map[string]any{"source": src, "count": count}
			if err != nil {
				data["error"] = err.Error()
			}
			emit(events.TypeSourceDone, data)
		},
		Cancelled: func() bool { return ctx.Err() != nil },
	}

	done := make(chan []domain.Vacancy, 1)
	go func() {
		done <- h.Engine.Search(ctx, prefs, prog)
	}()

	emit(events.TypeSearchStarted, map[string]any{"countries": prefs.Countries})
	for {
		select {
		case <-ctx.Done():
			// drain the engine so its final cache writes are not raced
			<-done
			return
		case evt := <-stream:
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", evt)
			flusher.Flush()
		case jobs := <-done:
			for {
				select {
				case evt := <-stream:
					fmt.Fprintf(w, "event: message\ndata: %s\n\n", evt)
				default:
					final := events.MakeEvent(reqID, events.TypeSearchCompleted, 1,
						map[string]any{"total": len(jobs), "jobs": jobs})
					fmt.Fprintf(w, "event: message\ndata: %s\n\n", final)
					flusher.Flush()
					return
				}
			}
		}
	}
}
