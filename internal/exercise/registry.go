package exercise

import (
	"fmt"
	"sort"
)

// Topic groups exercises the way the tutorial chapters do.
type Topic string

const (
	TopicIntroduction Topic = "introduction"
	TopicEnumerables  Topic = "enumerables"
	TopicMethods      Topic = "methods"
	TopicStrings      Topic = "strings"
)

// Exercise is one runnable kata.
type Exercise struct {
	Name    string
	Topic   Topic
	Summary string
	// Input describes the stdin lines the exercise expects.
	Input string
	Run   RunFunc
}

// Registry indexes exercises by name and keeps registration order.
type Registry struct {
	byName map[string]Exercise
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Exercise)}
}

// Register adds ex. Names must be unique and Run must be set.
func (r *Registry) Register(ex Exercise) error {
	if ex.Name == "" || ex.Run == nil {
		return fmt.Errorf("register: exercise %q needs a name and a run function", ex.Name)
	}
	if _, dup := r.byName[ex.Name]; dup {
		return fmt.Errorf("register: duplicate exercise %q", ex.Name)
	}
	r.byName[ex.Name] = ex
	r.order = append(r.order, ex.Name)
	return nil
}

// MustRegister is Register for static catalogs.
func (r *Registry) MustRegister(exs ...Exercise) *Registry {
	for _, ex := range exs {
		if err := r.Register(ex); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup finds an exercise by name.
func (r *Registry) Lookup(name string) (Exercise, error) {
	ex, ok := r.byName[name]
	if !ok {
		return Exercise{}, &OpError{
			Op:       "exercise.lookup",
			Kind:     KindUnknownExercise,
			Exercise: name,
		}
	}
	return ex, nil
}

// List returns exercises in registration order, optionally only those in
// topic.
func (r *Registry) List(topic Topic) []Exercise {
	out := make([]Exercise, 0, len(r.order))
	for _, name := range r.order {
		ex := r.byName[name]
		if topic == "" || ex.Topic == topic {
			out = append(out, ex)
		}
	}
	return out
}

// Topics returns the distinct topics, sorted.
func (r *Registry) Topics() []Topic {
	seen := make(map[Topic]struct{})
	for _, ex := range r.byName {
		seen[ex.Topic] = struct{}{}
	}
	out := make([]Topic, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
