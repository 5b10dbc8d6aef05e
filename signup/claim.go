// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import (
	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
)

type claimStatement struct {
	View   crypto.Hash
	ID     account.ID
	Client crypto.KeyCard
}

func (claimStatement) Header() crypto.Header { return crypto.HeaderIdClaim }

func (s claimStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	out = append(out, s.ID[:]...)
	id := s.Client.Identity()
	out = append(out, id[:]...)
	return append(out, s.Client.PublicKey().Bytes()...)
}

// Claim is a client's self-signed assertion that it holds account.ID
// under view v. Replicas that see two distinct Claims for the same ID
// treat the earlier one as proof of conflict and refuse to certify the
// later claimant.
type Claim struct {
	statement claimStatement
	signature crypto.Signature
}

// NewClaim builds a Claim for id under v, signed by secret.
func NewClaim(secret *crypto.SecretKey, v crypto.Hash, id account.ID) Claim {
	statement := claimStatement{
		View:   v,
		ID:     id,
		Client: crypto.NewKeyCard(clientIdentity(secret), secret.PublicKey()),
	}
	return Claim{statement: statement, signature: crypto.Sign(secret, statement)}
}

// View returns the view the claim was made under.
func (c Claim) View() crypto.Hash { return c.statement.View }

// ID returns the account.ID being claimed.
func (c Claim) ID() account.ID { return c.statement.ID }

// Client returns the identity of the claiming client.
func (c Claim) Client() ids.ID { return c.statement.Client.Identity() }

// ClientCard returns the claiming client's full keycard, needed by
// Certify to bind the resulting AssignmentStatement to a verifiable
// public key rather than a bare identity.
func (c Claim) ClientCard() crypto.KeyCard { return c.statement.Client }

// Validate checks the claim's self-signature against its own embedded
// client key — a Claim proves its claimant controls the client identity
// it names, independent of whether that claimant wins the conflict
// check against any other Claim for the same ID.
func (c Claim) Validate() error {
	if !crypto.VerifyStatement(c.signature, c.statement.Client.PublicKey(), c.statement) {
		return ErrClaimInvalid
	}
	return nil
}
