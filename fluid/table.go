package fluid

// 組み込みの流体定数表
//
// Tc, K / Pc, kPa / ω
var defaultTable = []Parameters{
	// Antoine 式は 1-100 degree C の係数 (mmHg, degree C) を kPa, K に換算したもの
	{
		Name:                "Water",
		CriticalTemperature: 647.096,
		CriticalPressure:    22064,
		AcentricFactor:      0.344,
		VaporPressure:       &Antoine{A: 7.196213, B: 1730.63, C: -39.724},
	},
	{Name: "R134a", CriticalTemperature: 374.21, CriticalPressure: 4059.4, AcentricFactor: 0.326},
	{Name: "R1234yf", CriticalTemperature: 367.85, CriticalPressure: 3381.5, AcentricFactor: 0.339},
	{Name: "R32", CriticalTemperature: 351.255, CriticalPressure: 5782.0, AcentricFactor: 0.2769},
	{Name: "R22", CriticalTemperature: 369.295, CriticalPressure: 4990.0, AcentricFactor: 0.22082},
	// ammonia
	{Name: "R717", CriticalTemperature: 405.40, CriticalPressure: 11333.0, AcentricFactor: 0.256},
	// carbon dioxide
	{Name: "R744", CriticalTemperature: 304.1282, CriticalPressure: 7377.3, AcentricFactor: 0.22394},
	// propane
	{Name: "R290", CriticalTemperature: 369.89, CriticalPressure: 4251.2, AcentricFactor: 0.1521},
	// isobutane
	{Name: "R600a", CriticalTemperature: 407.81, CriticalPressure: 3629.0, AcentricFactor: 0.184},
	{Name: "Methane", CriticalTemperature: 190.564, CriticalPressure: 4599.2, AcentricFactor: 0.01142},
	{Name: "Nitrogen", CriticalTemperature: 126.192, CriticalPressure: 3395.8, AcentricFactor: 0.0372},
}

// NewDefaultRegistry returns a registry holding the built-in fluid table.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(defaultTable...)
	if err != nil {
		// the built-in table is static data
		panic(err)
	}
	return r
}
