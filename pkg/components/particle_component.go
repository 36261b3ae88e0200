package components

// ParticleComponent 爆炸中的单个粒子
//
// 粒子沿径向飞出，速度逐帧衰减，透明度逐帧线性下降。
// Alpha <= 0 的粒子不再绘制，但仍保留在所属爆炸中直到整个爆炸被移除。
type ParticleComponent struct {
	X, Y   float64
	VX, VY float64 // 速度（像素/帧）
	Alpha  float64 // 透明度，初始为 1
	Radius float64
}

// ExplosionComponent 一次爆炸，包含固定数量的粒子
// 只要还有一个粒子可见就保留，全部透明后被移除
type ExplosionComponent struct {
	Particles []ParticleComponent
}
