// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Archetype  string // ID архетипа из defs
	Life       uint32
	MaxLife    uint32
	Wave       uint // номер волны, в которой враг появился
	ReachedEnd bool // Достиг ли враг конца пути
}
