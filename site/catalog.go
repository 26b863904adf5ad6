package site

// RegisterBuiltins registers every supported publication with the registry.
// This is the static registration table: all handlers register eagerly at
// startup, so resolution never depends on load order or import side
// effects.
func RegisterBuiltins(r *Registry) {
	for _, factory := range []Factory{
		NewAviationWeek,
		NewCourrierInternational,
		NewLeFigaro,
		NewLeMonde,
		NewLesEchos,
		NewLeTemps,
		NewMediapart,
		NewMondeDiplomatique,
		NewNYTimes,
		NewPourLaScience,
		NewQuantaMagazine,
		NewReporterre,
		NewTheGuardian,
		NewUsineNouvelle,
	} {
		r.Register(factory)
	}
}
