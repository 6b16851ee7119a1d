package builder

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/qrstudio/pkg/logger"
	"github.com/dmitrymomot/qrstudio/pkg/payload"
	"github.com/dmitrymomot/qrstudio/pkg/prefs"
	"github.com/dmitrymomot/qrstudio/pkg/studio"
)

func (s *Service) page(w http.ResponseWriter, r *http.Request) {
	theme, err := s.prefs.Theme(r.Context())
	if err != nil {
		s.log.WarnContext(r.Context(), "theme lookup failed, using default", logger.Error(err))
		theme = prefs.ThemeLight
	}

	s.session(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := editorPage.Execute(w, pageData{Theme: string(theme)}); err != nil {
		s.log.ErrorContext(r.Context(), "page render failed", logger.Error(err))
	}
}

// edit absorbs the full signal tree on every input change. The session's
// debouncer coalesces the burst into a single regeneration.
func (s *Service) edit(w http.ResponseWriter, r *http.Request) {
	var sig signals
	if err := datastar.ReadSignals(r, &sig); err != nil {
		s.log.WarnContext(r.Context(), "malformed edit signals", logger.Error(err))
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return
	}

	id := s.sessionID(w, r)
	sess := s.sessions.Get(id)

	if t := payload.Type(sig.Type); t.Valid() && t != sess.Record().Kind() {
		sess.SetType(t)
	}
	for f, v := range sig.fields() {
		sess.Apply(f, v)
	}
	sess.SetOptions(sig.renderOptions())

	s.log.DebugContext(r.Context(), "edit applied",
		logger.SessionID(id),
		logger.PayloadType(sess.Record().Kind()),
	)

	w.WriteHeader(http.StatusNoContent)
}

// stream is the long-lived SSE connection. Generation outcomes arrive as
// session events and are patched into the page as they happen. The stream
// pins the session; once the last stream for a browser disconnects the
// session is evicted.
func (s *Service) stream(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	sess := s.sessions.Acquire(id)
	defer s.sessions.Release(id)

	sse := datastar.NewSSE(w, r)

	// Late joiners get the current code right away.
	if res := sess.Result(); res != nil {
		if err := sse.PatchElements(qrFrame(res.DataURI())); err != nil {
			return
		}
	}

	for ev := range sess.Subscribe(r.Context()) {
		if ev.Kind == studio.EventSuccess {
			if res := sess.Result(); res != nil {
				if err := sse.PatchElements(qrFrame(res.DataURI())); err != nil {
					return
				}
			}
		}
		if err := sse.PatchElements(toast(ev)); err != nil {
			return
		}
	}
}

func (s *Service) download(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	res := sess.Result()
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename()))
	if _, err := w.Write(res.PNG); err != nil {
		s.log.WarnContext(r.Context(), "download write failed", logger.Error(err))
	}
}

// copy hands the encoded payload text to the browser, which owns the
// clipboard. An empty payload is a no-op.
func (s *Service) copy(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	content := sess.Record().Content()
	if content == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, map[string]string{"content": content})
}

// share returns the payload the browser needs for the Web Share API. The
// client falls back to clipboard copy when navigator.share is unavailable.
func (s *Service) share(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	res := sess.Result()
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, map[string]string{
		"title":    "QR Code",
		"filename": res.Filename(),
		"dataUri":  res.DataURI(),
	})
}

// theme flips the persisted preference and pushes the new value back as a
// signal so the page restyles without a reload.
func (s *Service) theme(w http.ResponseWriter, r *http.Request) {
	current, err := s.prefs.Theme(r.Context())
	if err != nil {
		s.log.WarnContext(r.Context(), "theme lookup failed, using default", logger.Error(err))
		current = prefs.ThemeLight
	}

	next := current.Toggle()
	if err := s.prefs.SetTheme(r.Context(), next); err != nil {
		s.log.ErrorContext(r.Context(), "theme persist failed", logger.Error(err))
		http.Error(w, "failed to save theme", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	_ = sse.PatchSignals([]byte(fmt.Sprintf(`{"theme":%q}`, next)))
}

func qrFrame(dataURI string) string {
	return fmt.Sprintf(`<div id="qr-frame"><img src="%s" alt="Generated QR code"></div>`, dataURI)
}

func toast(ev studio.Event) string {
	return fmt.Sprintf(`<div id="toast" class="toast toast-%s">%s</div>`,
		ev.Kind, html.EscapeString(ev.Message))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
