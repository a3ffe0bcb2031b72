package catalog

// StaticSource is an in-memory Source seeded with a base catalog
// sufficient to exercise every derived computation in the ship stats
// engine, inventory store, and boost service. Real catalog file
// loading is an external collaborator and out of scope for the core.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

func (StaticSource) LoadThrusters() map[string]Record {
	return map[string]Record{
		"thruster.chem.baseline": {
			Name: "Chemical Thruster", ThrustKn: 50, IspS: 450, MassKg: 800, TechLevel: 1,
		},
		"thruster.nuclear.nerva": {
			Name: "Nuclear Thermal Thruster", ThrustKn: 30, IspS: 900, MassKg: 1500, TechLevel: 2,
		},
		"thruster.ion.hall": {
			Name: "Hall-Effect Ion Thruster", ThrustKn: 0.5, IspS: 3000, MassKg: 200, TechLevel: 3,
		},
	}
}

func (StaticSource) LoadReactors() map[string]Record {
	return map[string]Record{
		"reactor.fission.compact": {
			Name: "Compact Fission Reactor", PowerMw: 5, ThermalMw: 15, MassKg: 4000, TechLevel: 2,
		},
	}
}

func (StaticSource) LoadGenerators() map[string]Record {
	return map[string]Record{
		"generator.solar.array": {
			Name: "Solar Array", PowerMw: 0.05, MassKg: 300, TechLevel: 1,
		},
	}
}

func (StaticSource) LoadRadiators() map[string]Record {
	return map[string]Record{
		"radiator.panel.standard": {
			Name: "Standard Radiator Panel", ThermalMw: 10, MassKg: 600, TechLevel: 1,
		},
	}
}

func (StaticSource) LoadRefineries() map[string]Record {
	return map[string]Record{
		"refinery.basic": {Name: "Basic Refinery", MassKg: 2500, TechLevel: 2},
	}
}

func (StaticSource) LoadRobonauts() map[string]Record {
	return map[string]Record{
		"robonaut.prospector": {Name: "Prospector Robonaut", MassKg: 450, TechLevel: 1},
		"robonaut.excavator":  {Name: "Excavator Robonaut", MassKg: 900, TechLevel: 2},
	}
}

func (StaticSource) LoadConstructors() map[string]Record {
	return map[string]Record{
		"constructor.surface.basic": {Name: "Surface Constructor", MassKg: 3200, TechLevel: 2},
	}
}

func (StaticSource) LoadStorage() map[string]Record {
	return map[string]Record{
		"storage.tank.water": {
			Name: "Water Tank", CapacityM3: 10, MassPerM3Kg: 1000, MassKg: 150, ResourceID: WaterResourceID, TechLevel: 1,
		},
		"storage.cargo.bay": {
			Name: "Cargo Bay", CapacityM3: 20, MassPerM3Kg: 2700, MassKg: 500, TechLevel: 1,
		},
	}
}

func (StaticSource) LoadResources() map[string]Record {
	return map[string]Record{
		"water":       {Name: "Water", MassPerM3Kg: 1000, ResourceID: "water"},
		"iron_oxide":  {Name: "Iron Oxide", MassPerM3Kg: 5170, ResourceID: "iron_oxide"},
		"silica":      {Name: "Silica", MassPerM3Kg: 2650, ResourceID: "silica"},
		"helium":      {Name: "Helium", MassPerM3Kg: 0.1786, ResourceID: "helium"},
		"hydrogen":    {Name: "Hydrogen", MassPerM3Kg: 0.0899, ResourceID: "hydrogen"},
	}
}
