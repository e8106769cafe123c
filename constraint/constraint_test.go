package constraint

import (
	"testing"

	"go.viam.com/test"

	"github.com/billx09/hpp-core/config"
)

type fakeProjector struct {
	rhs        config.Configuration
	lineSearch LineSearch
}

func (f *fakeProjector) ProjectOnKernel(qFrom, qTo config.Configuration) (config.Configuration, bool) {
	return qTo, true
}

func (f *fakeProjector) Apply(q config.Configuration) (config.Configuration, bool) {
	return q, true
}

func (f *fakeProjector) RightHandSideFromConfig(q config.Configuration) {
	f.rhs = q
}

func (f *fakeProjector) LineSearchType(kind LineSearch) {
	f.lineSearch = kind
}

func (f *fakeProjector) Copy() ConfigProjector {
	return &fakeProjector{rhs: f.rhs, lineSearch: f.lineSearch}
}

// statelessProjector implements ConfigProjector but not Copier, exercising
// Set.Copy's share-instead-of-clone fallback.
type statelessProjector struct{}

func (statelessProjector) ProjectOnKernel(qFrom, qTo config.Configuration) (config.Configuration, bool) {
	return qTo, true
}
func (statelessProjector) Apply(q config.Configuration) (config.Configuration, bool) { return q, true }
func (statelessProjector) RightHandSideFromConfig(q config.Configuration)            {}
func (statelessProjector) LineSearchType(kind LineSearch)                            {}

func TestNewSetNilProjector(t *testing.T) {
	s := NewSet(nil)
	test.That(t, s, test.ShouldBeNil)

	_, ok := s.ConfigProjector()
	test.That(t, ok, test.ShouldBeFalse)
}

func TestSetCopyDeepCopiesCopier(t *testing.T) {
	p := &fakeProjector{}
	s := NewSet(p)

	s2 := s.Copy()
	proj2, ok := s2.ConfigProjector()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, proj2, test.ShouldNotEqual, p)

	proj2.RightHandSideFromConfig(config.Configuration{1, 2})
	test.That(t, p.rhs, test.ShouldBeNil)
}

func TestSetCopySharesNonCopier(t *testing.T) {
	p := statelessProjector{}
	s := NewSet(p)

	s2 := s.Copy()
	proj2, ok := s2.ConfigProjector()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, proj2, test.ShouldEqual, p)
}
