package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/example/reserva-rapida/internal/auth"
	"github.com/example/reserva-rapida/internal/domain/user"
	"github.com/example/reserva-rapida/internal/metrics"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data := tmplData{Title: "Login"}
		if name := r.URL.Query().Get("registered"); name != "" {
			data.Flash = "User " + name + " registered successfully! You can sign in now."
		}
		s.render(w, r, http.StatusOK, "templates/login.html", data)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		form := user.LoginForm{
			Email:    strings.TrimSpace(r.FormValue("email")),
			Password: r.FormValue("password"),
		}
		if err := form.Validate(); err != nil {
			metrics.IncValidationFailure("login")
			s.render(w, r, http.StatusUnprocessableEntity, "templates/login.html", tmplData{
				Title: "Login",
				Flash: flashFor(err),
				Form:  map[string]string{"email": form.Email},
			})
			return
		}

		gate, _ := s.Auth.Load(r)
		gate.Login()
		if err := s.Auth.Save(w, r, gate, auth.Session{Email: form.Email}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		metrics.IncLogin()
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "templates/signup.html", tmplData{Title: "Create account"})
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := user.SignupForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}
	if err := form.Validate(); err != nil {
		metrics.IncValidationFailure("signup")
		s.render(w, r, http.StatusUnprocessableEntity, "templates/signup.html", tmplData{
			Title: "Create account",
			Flash: flashFor(err),
			Form:  map[string]string{"name": form.Name, "email": form.Email},
		})
		return
	}
	// nothing is stored; back to login like a real registration would
	s.logger().Printf("web: signup simulated for %q", form.Email)
	http.Redirect(w, r, "/login?registered="+url.QueryEscape(form.Name), http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	gate, sess := s.Auth.Load(r)
	gate.Logout()
	if err := s.Auth.Save(w, r, gate, sess); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.Wizard.Clear(w)
	metrics.IncLogout()
	http.Redirect(w, r, "/login", http.StatusFound)
}
