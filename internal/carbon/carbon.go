// Package carbon 將「一次被接受的查詢」換算成能源與碳排估計值。
package carbon

// 估算依據 IEA 方法（非實測）：
//   - EnergyPerQueryKWh：每次查詢的固定能耗估計（0.34 Wh）
//   - GridEmissionFactor：電網每 kWh 的 CO2 排放係數（印度平均值）
const (
	EnergyPerQueryKWh  = 0.00034
	GridEmissionFactor = 0.7
)

// Estimate 回傳單次查詢的 (energyKWh, co2Kg)。
// 目前對所有查詢回傳相同常數；呼叫端不得假設未來版本維持與輸入無關。
func Estimate() (energyKWh, co2Kg float64) {
	energyKWh = EnergyPerQueryKWh
	co2Kg = energyKWh * GridEmissionFactor
	return energyKWh, co2Kg
}
