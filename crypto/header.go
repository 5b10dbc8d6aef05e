// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

// Header tags every signed statement with its protocol domain, binding
// the signature to that domain and preventing cross-protocol replay:
// a signature collected over a Prepare can never be replayed as if it
// were a Witness or a BatchCompletion.
type Header int8

const (
	HeaderInstall Header = iota
	HeaderLatticeDecisions
	HeaderResolution
	HeaderIdRequest
	HeaderIdClaim
	HeaderIdAssignment
	HeaderPrepare
	HeaderWitness
	HeaderReduction
	HeaderBatchRoot
	HeaderBatchCommit
	HeaderDependency
	HeaderCompletion
	HeaderBatchCompletion
	HeaderDisclosure
	HeaderCertification
	HeaderRogue
)

func (h Header) String() string {
	switch h {
	case HeaderInstall:
		return "Install"
	case HeaderLatticeDecisions:
		return "LatticeDecisions"
	case HeaderResolution:
		return "Resolution"
	case HeaderIdRequest:
		return "IdRequest"
	case HeaderIdClaim:
		return "IdClaim"
	case HeaderIdAssignment:
		return "IdAssignment"
	case HeaderPrepare:
		return "Prepare"
	case HeaderWitness:
		return "Witness"
	case HeaderReduction:
		return "Reduction"
	case HeaderBatchRoot:
		return "BatchRoot"
	case HeaderBatchCommit:
		return "BatchCommit"
	case HeaderDependency:
		return "Dependency"
	case HeaderCompletion:
		return "Completion"
	case HeaderBatchCompletion:
		return "BatchCompletion"
	case HeaderDisclosure:
		return "Disclosure"
	case HeaderCertification:
		return "Certification"
	case HeaderRogue:
		return "Rogue"
	default:
		return "Unknown"
	}
}

// Statement is anything that can be signed: its Header domain-separates it
// from every other signable type in the system, and Encode produces the
// exact bytes that go under the signature.
type Statement interface {
	Header() Header
	Encode() []byte
}

// Sign produces a domain-separated signature over s.
func Sign(sk *SecretKey, s Statement) Signature {
	return sk.Sign(signingBytes(s))
}

// Multisign produces a domain-separated signature share suitable for
// aggregation into a MultiSignature (a reduction, witness, commit, or
// completion shard).
func Multisign(sk *SecretKey, s Statement) Signature {
	return sk.Sign(signingBytes(s))
}

// VerifyStatement checks sig against pk over s.
func VerifyStatement(sig Signature, pk PublicKey, s Statement) bool {
	return sig.Verify(pk, signingBytes(s))
}

// VerifyMultiStatement checks msig against the given signer set over s.
func VerifyMultiStatement(msig MultiSignature, signers []PublicKey, s Statement) bool {
	return msig.Verify(signers, signingBytes(s))
}

func signingBytes(s Statement) []byte {
	payload := s.Encode()
	out := make([]byte, 0, len(payload)+1)
	out = append(out, byte(s.Header()))
	out = append(out, payload...)
	return out
}
