package schnorrbatch

import (
	"context"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/sirupsen/logrus"

	"github.com/mahdiidarabi/schnorr-batch/internal/workerpool"
)

// VerifyBatch checks a joint batch: every signature is verified against
// JointMessage(payloads), so each signer attests to the entire batch.
// It stops at the first invalid item. An empty batch is valid.
func (v *Verifier) VerifyBatch(ctx context.Context, items []BatchItem, payloads []ValueList) (bool, error) {
	report, err := v.verifyJoint(ctx, "VerifyBatch", items, payloads, true)
	if err != nil {
		return false, err
	}
	return report.Valid, nil
}

// VerifyBatchReport is VerifyBatch without early exit; it reports every item.
func (v *Verifier) VerifyBatchReport(ctx context.Context, items []BatchItem, payloads []ValueList) (*Report, error) {
	return v.verifyJoint(ctx, "VerifyBatchReport", items, payloads, false)
}

// VerifyIndependent checks a batch where item i is verified against
// PayloadMessage(payloads[i]) alone. It stops at the first invalid item.
func (v *Verifier) VerifyIndependent(ctx context.Context, items []BatchItem, payloads []ValueList) (bool, error) {
	report, err := v.verifyIndependent(ctx, "VerifyIndependent", items, payloads, true)
	if err != nil {
		return false, err
	}
	return report.Valid, nil
}

// VerifyIndependentReport is VerifyIndependent without early exit.
func (v *Verifier) VerifyIndependentReport(ctx context.Context, items []BatchItem, payloads []ValueList) (*Report, error) {
	return v.verifyIndependent(ctx, "VerifyIndependentReport", items, payloads, false)
}

// VerifyMultisig checks N co-signers of one deposit payload. The payload must
// carry exactly DepositFieldCount values and at least one signature is
// required; violations return ErrInvalidPayloadLength or ErrNoSignatures
// before any curve arithmetic.
func (v *Verifier) VerifyMultisig(ctx context.Context, items []BatchItem, payload ValueList) (bool, error) {
	report, err := v.verifyMultisig(ctx, "VerifyMultisig", items, payload, true)
	if err != nil {
		return false, err
	}
	return report.Valid, nil
}

// VerifyMultisigReport is VerifyMultisig without early exit.
func (v *Verifier) VerifyMultisigReport(ctx context.Context, items []BatchItem, payload ValueList) (*Report, error) {
	return v.verifyMultisig(ctx, "VerifyMultisigReport", items, payload, false)
}

func (v *Verifier) verifyJoint(ctx context.Context, op string, items []BatchItem, payloads []ValueList, failFast bool) (*Report, error) {
	if len(items) != len(payloads) {
		return nil, formatErrorf(op, ErrLengthMismatch, "%d signatures, %d payloads", len(items), len(payloads))
	}
	message := JointMessage(payloads)
	return v.run(ctx, op, items, func(int) Message { return message }, failFast)
}

func (v *Verifier) verifyIndependent(ctx context.Context, op string, items []BatchItem, payloads []ValueList, failFast bool) (*Report, error) {
	if len(items) != len(payloads) {
		return nil, formatErrorf(op, ErrLengthMismatch, "%d signatures, %d payloads", len(items), len(payloads))
	}
	messages := make([]Message, len(payloads))
	for i, p := range payloads {
		messages[i] = PayloadMessage(p)
	}
	return v.run(ctx, op, items, func(i int) Message { return messages[i] }, failFast)
}

func (v *Verifier) verifyMultisig(ctx context.Context, op string, items []BatchItem, payload ValueList, failFast bool) (*Report, error) {
	if len(items) == 0 {
		return nil, ErrNoSignatures
	}
	if len(payload) != DepositFieldCount {
		return nil, ErrInvalidPayloadLength
	}
	message := PayloadMessage(payload)
	return v.run(ctx, op, items, func(int) Message { return message }, failFast)
}

// run decodes every public key up front, so malformed input aborts the call
// before any item is checked, then fans the checks out.
func (v *Verifier) run(ctx context.Context, op string, items []BatchItem, messageFor func(int) Message, failFast bool) (*Report, error) {
	points := make([]*secp256k1.PublicKey, len(items))
	for i := range items {
		point, err := decodePublicKey(items[i].PublicKey)
		if err != nil {
			return nil, formatError(op, fmt.Errorf("item %d: %w", i, err))
		}
		points[i] = point
	}

	log := v.log.WithFields(logrus.Fields{
		"op":        op,
		"items":     len(items),
		"binder":    v.binder.Name(),
		"fail_fast": failFast,
	})
	log.Debug("verifying batch")

	result, err := workerpool.Run(ctx, len(items), workerpool.Options{
		Workers:  v.config.NumWorkers,
		FailFast: failFast,
	}, func(i int) bool {
		return v.check(points[i], items[i].PublicKey, messageFor(i), items[i].Signature)
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Valid:   result.Passed,
		Items:   result.Verdicts,
		Checked: result.Checked,
	}
	if !report.Valid && !failFast {
		for _, idx := range report.Failed() {
			log.WithField("index", idx).Debug("item rejected")
		}
	}
	log.WithFields(logrus.Fields{
		"valid":   report.Valid,
		"checked": report.Checked,
	}).Debug("batch verified")
	return report, nil
}
