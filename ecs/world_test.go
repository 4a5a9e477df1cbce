package ecs

import (
	"testing"

	"github.com/milk9111/speeed/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("expected %v to be alive", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	// Cases share the world and run in order.
	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if n := Count(w, h2.Kind()); n != 2 {
					t.Fatalf("expected 2 strings, got %d", n)
				}
			},
		},
		{
			name:  "replace_int_on_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(11)) },
			check: func(t *testing.T) {
				v, _ := Get[int](w, e1, h1.Kind())
				if *v != 11 || Count(w, h1.Kind()) != 1 {
					t.Fatalf("expected a single replaced value 11, got %d", *v)
				}
			},
		},
		{
			name: "destroy_e1_drops_its_components",
			setup: func() error {
				if err := Add(w, e1, h3.Kind(), float64Ptr(1.23)); err != nil {
					return err
				}
				w.DestroyEntity(e1)
				return nil
			},
			check: func(t *testing.T) {
				if Count(w, h1.Kind()) != 0 || Count(w, h3.Kind()) != 0 {
					t.Fatalf("expected e1 components gone")
				}
				if e, ok := First(w, h2.Kind()); !ok || e != e2 {
					t.Fatalf("expected e2 to keep its string, got %v ok=%v", e, ok)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := w.CreateEntity()
		e2 := w.CreateEntity()
		e3 := w.CreateEntity()

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	both := w.CreateEntity()
	onlyA := w.CreateEntity()
	onlyB := w.CreateEntity()
	if err := Add(w, both, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, both, kb, stringPtr("x")); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, onlyA, ka, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, onlyB, kb, stringPtr("y")); err != nil {
		t.Fatal(err)
	}

	var ents []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		if *a != 1 || *b != "x" {
			t.Fatalf("unexpected values %d %q", *a, *b)
		}
		ents = append(ents, e)
	})
	set := toSet(ents)
	if len(set) != 1 {
		t.Fatalf("expected only the entity with both components, got %v", ents)
	}
	if _, ok := set[both]; !ok {
		t.Fatalf("expected %v in ForEach2 result", both)
	}

	empty := component.NewComponentKind[float64]()
	ForEach2(w, ka, empty, func(Entity, *int, *float64) {
		t.Fatal("no entity carries the second kind")
	})
}

func TestStaleHandles(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := w.CreateEntity()
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !w.DestroyEntity(old) {
		t.Fatal("failed to destroy entity")
	}
	if w.DestroyEntity(old) {
		t.Fatal("destroying twice should report false")
	}

	reused := w.CreateEntity()
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, reused)
	}
	if reused == old {
		t.Fatal("reused slot should carry a new generation")
	}
	if Has(w, reused, k) {
		t.Fatal("components of a destroyed entity must not leak into its slot")
	}
	if _, ok := Get(w, old, k); ok {
		t.Fatal("stale handle should not resolve")
	}
	if err := Add(w, old, k, intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil_value", func() error { return Add[int](w, e, component.NewComponentKind[int](), nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
		{"zero_entity", func() error { return Add(w, 0, component.NewComponentKind[int](), intPtr(1)) }, component.ErrEntityNotAlive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.run(); err != c.want {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	if _, _, err := Single(w, k); err != ErrNoEntity {
		t.Fatalf("expected ErrNoEntity, got %v", err)
	}

	e1 := w.CreateEntity()
	if err := Add(w, e1, k, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	got, v, err := Single(w, k)
	if err != nil || got != e1 || *v != 7 {
		t.Fatalf("expected e1=7, got %v=%v err=%v", got, v, err)
	}

	e2 := w.CreateEntity()
	if err := Add(w, e2, k, intPtr(8)); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Single(w, k); err != ErrMultipleEntities {
		t.Fatalf("expected ErrMultipleEntities, got %v", err)
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, k, func(e Entity, _ *int) {
		visited++
		w.DestroyEntity(e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if n := Count(w, k); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
	if _, ok := First(w, k); ok {
		t.Fatal("expected no entity left")
	}
}

func TestGetReturnsSharedPointer(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := w.CreateEntity()
	if err := Add(w, e, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	v, _ := Get(w, e, k)
	*v = 42
	again, _ := Get(w, e, k)
	if *again != 42 {
		t.Fatalf("expected mutation through pointer, got %d", *again)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordingSystem{"a", &log}, nil, recordingSystem{"b", &log})
	s.Add(recordingSystem{"c", &log})
	s.Update(NewWorld())
	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("unexpected order %v", log)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}
