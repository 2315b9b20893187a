package usage

// GlobalScope is the name of the module scope.
const GlobalScope = "global"

type scope struct {
	name string

	locals map[string]int
	order  []string
	used   map[string]struct{}

	globals   map[string]struct{}
	nonlocals map[string]struct{}
}

func newScope(name string) *scope {
	return &scope{
		name:      name,
		locals:    map[string]int{},
		used:      map[string]struct{}{},
		globals:   map[string]struct{}{},
		nonlocals: map[string]struct{}{},
	}
}

// define registers a local keeping the line of the first definition.
func (s *scope) define(name string, line int) {
	if _, ok := s.locals[name]; ok {
		return
	}
	s.locals[name] = line
	s.order = append(s.order, name)
}

func (s *scope) hasLocal(name string) bool {
	_, ok := s.locals[name]
	return ok
}

func (s *scope) isGlobal(name string) bool {
	_, ok := s.globals[name]
	return ok
}

func (s *scope) isNonlocal(name string) bool {
	_, ok := s.nonlocals[name]
	return ok
}

func (s *scope) markUsed(name string) {
	s.used[name] = struct{}{}
}

// declare adds a redirect for a name that is not already local here.
func (s *scope) declare(set map[string]struct{}, name string) {
	if s.hasLocal(name) {
		return
	}
	set[name] = struct{}{}
}

func (s *scope) unused() []string {
	var res []string
	for _, name := range s.order {
		if _, ok := s.used[name]; !ok {
			res = append(res, name)
		}
	}
	return res
}
