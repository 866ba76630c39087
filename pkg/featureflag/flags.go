package featureflag

var (
	// Dummy shows how to define a feature flag. DO NOT USE IT!
	Dummy = New("Dummy", Bool(false))

	// GlobalRegistration controls whether configured registries may be
	// added to the process-wide global composite registry. It is an
	// escape hatch for setups where global registration causes duplicate
	// exposition.
	GlobalRegistration = New("GlobalRegistration", Bool(true))

	// PedanticRegistries controls whether newly created registries use
	// pedantic consistency checking. Pedantic checking is stricter than
	// needed for regular operation and mainly useful while developing
	// new binders.
	PedanticRegistries = New("PedanticRegistries", Bool(false))
)
