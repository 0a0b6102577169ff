package components

// EffectComponent 标记属于某一次"Yes"特效的实体
// 同一次点击产生的雨点爱心和爆裂爱心共享同一个 ID
type EffectComponent struct {
	ID int
}
