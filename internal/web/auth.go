package web

import (
	"net/http"

	"github.com/emberlore/codex/internal/fetch"
	"github.com/emberlore/codex/internal/model"
)

// authForm is the view model behind the login and register pages.
type authForm struct {
	Identifier string
	Username   string
	Email      string
	Err        string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.html", "Sign in", authForm{})
}

// handleLogin exchanges the submitted credentials for a token and
// starts a session. On failure the form re-renders with the backend's
// message and the identifier preserved.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	creds := model.Credentials{
		Identifier: r.PostFormValue("identifier"),
		Password:   r.PostFormValue("password"),
	}

	login := fetch.Login(s.auth)
	resp, err := login.Invoke(r.Context(), creds)
	if err != nil {
		s.render(w, r, "login.html", "Sign in", authForm{
			Identifier: creds.Identifier,
			Err:        login.State().Err,
		})
		return
	}

	s.sessions.Write(w, resp.JWT)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "register.html", "Create account", authForm{})
}

// handleRegister creates an account and starts a session with the
// returned token, mirror of handleLogin.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	reg := model.Registration{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	register := fetch.Register(s.auth)
	resp, err := register.Invoke(r.Context(), reg)
	if err != nil {
		s.render(w, r, "register.html", "Create account", authForm{
			Username: reg.Username,
			Email:    reg.Email,
			Err:      register.State().Err,
		})
		return
	}

	s.sessions.Write(w, resp.JWT)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
