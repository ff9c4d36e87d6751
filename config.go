package xmlscan

// Flag is a compile-time boolean used to specialize the parser
// engine: SIMDOn/SIMDOff and CheckTagsOn/CheckTagsOff are its only
// implementations. Passing one as a type argument to runWith lets
// the compiler monomorphize each instantiation separately, so the
// branch it decides is dead code for that combination compiles away
// rather than costing a runtime check.
type Flag interface {
	enabled() bool
}

// SIMDOn selects the vectorised fast paths.
type SIMDOn struct{}

func (SIMDOn) enabled() bool { return true }

// SIMDOff disables the vectorised fast paths, falling back to the
// scalar dispatch loop unconditionally.
type SIMDOff struct{}

func (SIMDOff) enabled() bool { return false }

// CheckTagsOn enables the open-tag matching stack: begin/end tag
// names are tracked and compared, and any element still open at a
// clean end-of-input is reported.
type CheckTagsOn struct{}

func (CheckTagsOn) enabled() bool { return true }

// CheckTagsOff disables the open-tag matching stack entirely: end
// tags are accepted without comparison against their begin tag, and
// the scratch buffer's stack region is never used.
type CheckTagsOff struct{}

func (CheckTagsOff) enabled() bool { return false }
