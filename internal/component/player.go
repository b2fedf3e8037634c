// internal/component/player.go
package component

// Economy хранит ресурсы игрока: золото и оставшиеся жизни.
type Economy struct {
	Gold  uint32
	Lives uint32
}
