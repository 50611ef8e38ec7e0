// Package lightsystem builds instructions for the light system program,
// which owns compressed SOL accounts: compressing and decompressing
// lamports, transferring between compressed accounts, and creating
// address-bound compressed accounts.
package lightsystem

// Anchor-style instruction discriminators: sha256("global:<name>")[..8].
var (
	InvokeDiscriminator    = []byte{26, 16, 169, 7, 21, 202, 242, 25}
	InvokeCpiDiscriminator = []byte{49, 212, 191, 129, 39, 194, 43, 196}
)
