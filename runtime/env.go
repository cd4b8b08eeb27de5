package aruntime

import "github.com/google/btree"

// Binding is one variable of the environment.
type Binding struct {
	Name  string
	Value Value
}

// env keeps variables ordered by name so the variable table and snapshots
// come out sorted without an extra pass.
type env struct {
	tree *btree.BTreeG[Binding]
}

func newEnv() *env {
	return &env{tree: btree.NewG(8, func(a, b Binding) bool { return a.Name < b.Name })}
}

func (e *env) get(name string) (Value, bool) {
	b, ok := e.tree.Get(Binding{Name: name})
	return b.Value, ok
}

func (e *env) set(name string, v Value) {
	e.tree.ReplaceOrInsert(Binding{Name: name, Value: v})
}

func (e *env) bindings() []Binding {
	out := make([]Binding, 0, e.tree.Len())
	e.tree.Ascend(func(b Binding) bool {
		out = append(out, b)
		return true
	})
	return out
}

func (e *env) snapshot() map[string]Value {
	cp := make(map[string]Value, e.tree.Len())
	e.tree.Ascend(func(b Binding) bool {
		cp[b.Name] = b.Value
		return true
	})
	return cp
}

// SortedBindings orders a variable snapshot by name.
func SortedBindings(vars map[string]Value) []Binding {
	e := newEnv()
	for name, v := range vars {
		e.set(name, v)
	}
	return e.bindings()
}
