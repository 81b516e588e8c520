package loop

import "github.com/kamstrup/intmap"

// Bindings maps integer key codes, such as ebiten.Key, tcell.Key or runes, to commands.
type Bindings[K intmap.IntKey] struct {
	keys *intmap.Map[K, Command]
}

// NewBindings creates an empty table sized for about capacity keys.
func NewBindings[K intmap.IntKey](capacity int) *Bindings[K] {
	return &Bindings[K]{keys: intmap.New[K, Command](capacity)}
}

// Bind maps key to cmd, replacing any previous binding. It returns b for chaining.
func (b *Bindings[K]) Bind(key K, cmd Command) *Bindings[K] {
	b.keys.Put(key, cmd)
	return b
}

// Unbind removes the binding for key.
func (b *Bindings[K]) Unbind(key K) {
	b.keys.Del(key)
}

// Lookup returns the command bound to key.
func (b *Bindings[K]) Lookup(key K) (Command, bool) {
	return b.keys.Get(key)
}

// Len returns the number of bound keys.
func (b *Bindings[K]) Len() int {
	return b.keys.Len()
}
