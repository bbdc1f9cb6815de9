// Package schnorrbatch verifies secp256k1 Schnorr signatures whose challenge
// binds the address of the nonce point, and checks batches of such signatures
// against shared or independent payloads.
//
// A signature is the pair (e, s) with
//
//	e = keccak256(address(R) ‖ parity ‖ px ‖ message)
//	s = k + x·e mod n
//
// where R = k·G is the nonce point, (parity, px) is the compressed public key
// and address(R) is the low 20 bytes of keccak256 of R's uncompressed
// coordinates. The verifier recomputes R' = s·G − e·P and accepts iff the
// rebuilt challenge equals e.
//
// # Quick Start
//
//	ok, err := schnorrbatch.Verify(parity, px, message, e, s)
//	if err != nil {
//	    log.Fatal(err) // malformed input, not a bad signature
//	}
//
// # Batches
//
// Three batch shapes are supported, each with a fail-fast boolean form and a
// per-item report form:
//
//	v := schnorrbatch.NewVerifier()
//
//	// Every signer attests to keccak256 of all payloads concatenated.
//	ok, err := v.VerifyBatch(ctx, items, payloads)
//
//	// Each signer attests to keccak256 of its own payload.
//	ok, err = v.VerifyIndependent(ctx, items, payloads)
//
//	// N co-signers of one five-field deposit payload.
//	report, err := v.VerifyMultisigReport(ctx, items, payload)
//
// A batch is valid only if every item is valid. Malformed input returns a
// *FormatError, and structural violations of the deposit variant return a
// *PreconditionError. Neither is ever reported as a plain false.
//
// # Custom Binders
//
// Implement the PointBinder interface to bind the nonce point differently;
// signer and verifier must agree on it:
//
//	v := schnorrbatch.NewVerifier().WithBinder(&MyBinder{})
package schnorrbatch
