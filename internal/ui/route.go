package ui

// Route is a top-level page reachable from the navigation bar.
type Route int

const (
	RouteHome Route = iota
	RouteCourses
	RouteInstructors
	RouteRegister
)

// Routes returns the navbar routes in display order.
func Routes() []Route {
	return []Route{RouteHome, RouteCourses, RouteInstructors, RouteRegister}
}

func (r Route) String() string {
	switch r {
	case RouteHome:
		return "Home"
	case RouteCourses:
		return "Courses"
	case RouteInstructors:
		return "Instructors"
	case RouteRegister:
		return "Register"
	default:
		return "Unknown"
	}
}

// Path is the location the route had on the school's website; shown in logs.
func (r Route) Path() string {
	switch r {
	case RouteHome:
		return "/"
	case RouteCourses:
		return "/courses"
	case RouteInstructors:
		return "/instructors"
	case RouteRegister:
		return "/register"
	default:
		return ""
	}
}

// ShowsGrid reports whether the route renders the course card grid.
func (r Route) ShowsGrid() bool {
	return r == RouteHome || r == RouteCourses
}

// ShowsHero reports whether the route renders the "Our Courses" hero section.
func (r Route) ShowsHero() bool {
	return r == RouteHome
}

// RouteHistory is the stack of previously visited routes for back navigation.
type RouteHistory struct {
	Stack []Route
}

// Push records r as visited.
func (h *RouteHistory) Push(r Route) {
	h.Stack = append(h.Stack, r)
}

// Pop removes and returns the most recently visited route.
func (h *RouteHistory) Pop() (Route, bool) {
	if len(h.Stack) == 0 {
		return RouteHome, false
	}
	top := h.Stack[len(h.Stack)-1]
	h.Stack = h.Stack[:len(h.Stack)-1]
	return top, true
}

// Peek returns the most recently visited route without removing it.
func (h *RouteHistory) Peek() (Route, bool) {
	if len(h.Stack) == 0 {
		return RouteHome, false
	}
	return h.Stack[len(h.Stack)-1], true
}

// Len returns the number of routes in the history.
func (h *RouteHistory) Len() int {
	return len(h.Stack)
}
