// Package storage derives Substrate storage keys.
//
// A storage item lives under twox128(pallet) || twox128(item). Plain values
// use that 32-byte prefix as their key. Maps append one segment per map key,
// each hashed with the hasher declared for it in the pallet metadata:
//
//	Key(["System", "Number"])
//	  = twox128("System") || twox128("Number")
//
//	MapKey(["System", "Account", "0x<account>"], false)
//	  = twox128("System") || twox128("Account") || blake2_128(account) || account
//
// MapKeyWith accepts explicit hashers for maps declared with anything other
// than Blake2_128Concat.
package storage
