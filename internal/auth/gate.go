package auth

// State is the position of the session gate.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Gate decides whether the auth screens or the main tabs are mounted.
// Login and Logout are its only mutators; both are unconditional and repeating
// either one is a no-op. The zero Gate is unauthenticated.
type Gate struct {
	state State
}

func (g *Gate) Login() { g.state = Authenticated }

func (g *Gate) Logout() { g.state = Unauthenticated }

func (g *Gate) State() State { return g.state }

func (g *Gate) Authenticated() bool { return g.state == Authenticated }
