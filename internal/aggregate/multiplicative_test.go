package aggregate

import (
	"math"
	"testing"

	"github.com/opensource-health/propr/internal/domain"
)

func TestPublishedConstants(t *testing.T) {
	m := Published()

	if m.C != -0.9991828 {
		t.Errorf("expected C -0.9991828, got %v", m.C)
	}
	if m.ToDead != 1.021915 {
		t.Errorf("expected to_dead 1.021915, got %v", m.ToDead)
	}
	for _, d := range domain.AllDomains() {
		if w := m.Weights[d]; w < 0.56 || w > 0.69 {
			t.Errorf("%s weight %v outside [0.56, 0.69]", d, w)
		}
	}
}

func TestMultiAttribute(t *testing.T) {
	m := Published()

	t.Run("NoImpairment", func(t *testing.T) {
		var dis domain.Disutilities
		if got := m.MultiAttribute(dis); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
		if got := m.Utility(dis); got != 1 {
			t.Errorf("expected utility 1, got %v", got)
		}
	})

	t.Run("WorstState", func(t *testing.T) {
		var dis domain.Disutilities
		for i := range dis {
			dis[i] = 1
		}
		if got := m.MultiAttribute(dis); math.Abs(got-1) > 1e-6 {
			t.Errorf("expected multi-attribute disutility near 1, got %v", got)
		}
		got := m.Utility(dis)
		if got >= 0 {
			t.Errorf("expected utility below the dead anchor, got %v", got)
		}
		if math.Abs(got-(-0.02191495648548436)) > 1e-12 {
			t.Errorf("expected -0.021915, got %v", got)
		}
	})

	t.Run("SingleDomain", func(t *testing.T) {
		// With one impaired domain the product collapses to c_d * dis_d.
		var dis domain.Disutilities
		dis[domain.Pain] = 0.5
		want := m.Weights[domain.Pain] * 0.5
		if got := m.MultiAttribute(dis); math.Abs(got-want) > 1e-12 {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("NonAdditive", func(t *testing.T) {
		var a, b, both domain.Disutilities
		a[domain.Sleep] = 0.4
		b[domain.Social] = 0.4
		both[domain.Sleep] = 0.4
		both[domain.Social] = 0.4

		sum := m.MultiAttribute(a) + m.MultiAttribute(b)
		if got := m.MultiAttribute(both); got >= sum {
			t.Errorf("expected combined disutility %v below additive sum %v", got, sum)
		}
	})

	t.Run("OutOfRangePropagates", func(t *testing.T) {
		var in, out domain.Disutilities
		in[domain.Physical] = 1
		out[domain.Physical] = 1.0000575
		if m.MultiAttribute(out) <= m.MultiAttribute(in) {
			t.Error("expected disutility above 1 to propagate without clamping")
		}
	})
}

func TestContributions(t *testing.T) {
	m := Published()
	dis := domain.Disutilities{0.1, 0.2, 0.3, 0.05, 0.4, 0.15, 0.25}

	contribs := m.Contributions(dis)
	if len(contribs) != domain.NumDomains {
		t.Fatalf("expected %d contributions, got %d", domain.NumDomains, len(contribs))
	}

	product := 1.0
	for i, c := range contribs {
		if c.Domain != domain.Domain(i) {
			t.Errorf("contribution %d: expected domain %s, got %s", i, domain.Domain(i), c.Domain)
		}
		if c.Disutility != dis[i] {
			t.Errorf("%s: expected disutility %v, got %v", c.Domain, dis[i], c.Disutility)
		}
		product *= c.Factor
	}

	want := m.MultiAttribute(dis)
	if got := (1 / m.C) * (product - 1); got != want {
		t.Errorf("contributions do not reproduce the product: expected %v, got %v", want, got)
	}
}
