package poly

import "testing"

func TestExtrudeOptions(t *testing.T) {
	def := defaultExtrudeOptions()
	if def.joint != JointNone || def.cap != CapNone || def.precision != DefaultPrecision ||
		def.resolution != DefaultResolution || def.mitreLimit != DefaultMitreLimit {
		t.Errorf("defaultExtrudeOptions() = %+v", def)
	}

	e := NewRobustExtruder(
		WithJoint(JointMitre),
		WithCap(CapRound),
		WithPrecision(-3),
		WithResolution(0),
		WithMitreLimit(4),
	)
	o := e.opts
	if o.joint != JointMitre || o.cap != CapRound {
		t.Errorf("joint, cap = %v, %v", o.joint, o.cap)
	}
	if o.precision != 1 {
		t.Errorf("precision = %d, want 1", o.precision)
	}
	if o.resolution != DefaultResolution {
		t.Errorf("resolution = %v, want default kept", o.resolution)
	}
	if o.mitreLimit != 4 {
		t.Errorf("mitreLimit = %v, want 4", o.mitreLimit)
	}
}
