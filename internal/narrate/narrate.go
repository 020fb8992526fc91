// Package narrate renders cache activity for the console.
//
// Nothing here feeds back into the caches; it only formats the plain values
// they return.
package narrate

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rankcache/internal/cache"
)

// Narrator writes one line per cache operation to w.
type Narrator struct {
	w       io.Writer
	heading lipgloss.Style
	key     lipgloss.Style
	evicted lipgloss.Style
}

// New builds a narrator. Colors are dropped when color is false or w is not a
// terminal.
func New(w io.Writer, color bool) *Narrator {
	r := lipgloss.NewRenderer(w)
	n := &Narrator{
		w:       w,
		heading: r.NewStyle(),
		key:     r.NewStyle(),
		evicted: r.NewStyle(),
	}
	if color {
		n.heading = n.heading.Bold(true).Foreground(lipgloss.Color("12"))
		n.key = n.key.Foreground(lipgloss.Color("11"))
		n.evicted = n.evicted.Foreground(lipgloss.Color("9"))
	}
	return n
}

func (n *Narrator) Heading(title string) {
	fmt.Fprintln(n.w, n.heading.Render(title))
}

func (n *Narrator) Line(format string, args ...any) {
	fmt.Fprintf(n.w, format+"\n", args...)
}

func (n *Narrator) evictedText(v any, ok bool) string {
	if !ok {
		return "none"
	}
	return n.evicted.Render(fmt.Sprint(v))
}

// RankedState formats entries as {'A'->rank=0, 'B'->rank=1}, lowest rank first.
func RankedState[T comparable](n *Narrator, c *cache.Ranked[T]) string {
	parts := make([]string, 0, c.Len())
	for _, e := range c.Entries() {
		parts = append(parts, n.key.Render(fmt.Sprintf("'%v'->rank=%d", e.Value, e.Rank)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// RankedPut narrates the outcome of c.Put(value).
func RankedPut[T comparable](n *Narrator, c *cache.Ranked[T], value, evicted T, ok bool) {
	n.Line("cache%s.put(%v), evicted=%s, %s",
		strings.ToUpper(c.Policy().String()), value, n.evictedText(evicted, ok), RankedState(n, c))
}

// InsertionState formats entries as {A=1, B=2}, oldest insertion first.
func InsertionState[K comparable, V any](n *Narrator, c *cache.InsertionOrder[K, V]) string {
	keys := c.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := c.Get(k)
		parts = append(parts, n.key.Render(fmt.Sprintf("%v=%v", k, v)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// InsertionPut narrates the outcome of c.Put(key, value).
func InsertionPut[K comparable, V any](n *Narrator, c *cache.InsertionOrder[K, V], key K, value V, evicted K, ok bool) {
	n.Line("cache.put(%v, %v), evicted=%s, %s", key, value, n.evictedText(evicted, ok), InsertionState(n, c))
}

// InsertionGet narrates a lookup.
func InsertionGet[K comparable, V any](n *Narrator, key K, value V, ok bool) {
	if !ok {
		n.Line("cache.get(%v) = not found", key)
		return
	}
	n.Line("cache.get(%v) = %v", key, value)
}
