package config

// ItineraryConfig 行程相关的业务开关
type ItineraryConfig struct {
	// AutoExtendDates 为 true 时，插入晚于 end_date 的天会自动扩展行程窗口；
	// 为 false 时，日期必须落在 [start_date, end_date] 内。
	// 早于 start_date 的日期任何情况下都会被拒绝。
	AutoExtendDates bool `json:"auto_extend_dates" yaml:"auto_extend_dates"`
}
