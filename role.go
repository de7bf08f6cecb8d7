package hlorepro

// Role classifies the part an allocation plays in the entry-point call.
type Role int

//go:generate go tool enumer -type=Role -trimprefix=Role -transform=lower role.go

const (
	// RoleNone marks allocations with no declared role, like constants and
	// thread-local scratch.
	RoleNone Role = iota

	// RoleParameter marks an input parameter buffer.
	RoleParameter

	// RoleOutput marks the output buffer.
	RoleOutput
)
