package schnorrbatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrsign"
)

func writeBatch(t *testing.T, batch *schnorrbatch.Batch) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, schnorrbatch.WriteJSON(f, batch))
	return path
}

func TestClient_VerifyFile(t *testing.T) {
	ctx := context.Background()
	client := schnorrbatch.NewClient()

	items, payloads := jointBatch(t, 4)
	path := writeBatch(t, &schnorrbatch.Batch{Items: items, Payloads: payloads})

	report, err := client.VerifyFile(ctx, path, schnorrbatch.ModeJoint)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, []bool{true, true, true, true}, report.Items)

	report, err = client.VerifyFile(ctx, path, schnorrbatch.ModeIndependent)
	require.NoError(t, err)
	assert.False(t, report.Valid)

	// The file has no deposit payload.
	_, err = client.VerifyFile(ctx, path, schnorrbatch.ModeDeposit)
	require.ErrorIs(t, err, schnorrbatch.ErrInvalidPayloadLength)

	_, err = client.VerifyFile(ctx, path, schnorrbatch.Mode(42))
	require.Error(t, err)
}

func TestClient_VerifyFile_Deposit(t *testing.T) {
	ctx := context.Background()
	items, payload := depositBatch(t, 3)
	path := writeBatch(t, &schnorrbatch.Batch{Items: items, Payload: payload})

	report, err := schnorrbatch.NewClient().VerifyFile(ctx, path, schnorrbatch.ModeDeposit)
	require.NoError(t, err)
	assert.True(t, report.Valid)

	path = writeBatch(t, &schnorrbatch.Batch{Items: items})
	_, err = schnorrbatch.NewClient().VerifyFile(ctx, path, schnorrbatch.ModeDeposit)
	require.ErrorIs(t, err, schnorrbatch.ErrInvalidPayloadLength)
}

func TestClient_VerifyFile_Missing(t *testing.T) {
	_, err := schnorrbatch.NewClient().VerifyFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"), schnorrbatch.ModeJoint)
	require.Error(t, err)
}

func TestClient_WithVerifierLogsRejections(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	verifier := schnorrbatch.NewVerifier().WithLogger(logger)
	client := schnorrbatch.NewClient().WithVerifier(verifier).WithParser(&schnorrbatch.JSONParser{})

	items, payloads := jointBatch(t, 3)
	keys, err := schnorrsign.RandomKeys(1)
	require.NoError(t, err)
	items[1].PublicKey = schnorrsign.PublicKeyOf(keys[0])

	report, err := client.VerifyParsed(context.Background(), &schnorrbatch.Batch{Items: items, Payloads: payloads}, schnorrbatch.ModeJoint)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, report.Failed())

	var rejected []int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "item rejected" {
			rejected = append(rejected, entry.Data["index"].(int))
		}
	}
	assert.Equal(t, []int{1}, rejected)
	assert.Equal(t, "batch verified", hook.LastEntry().Message)
	assert.Equal(t, false, hook.LastEntry().Data["valid"])
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want schnorrbatch.Mode
	}{
		{"", schnorrbatch.ModeJoint},
		{"joint", schnorrbatch.ModeJoint},
		{"Independent", schnorrbatch.ModeIndependent},
		{"DEPOSIT", schnorrbatch.ModeDeposit},
	}
	for _, tt := range tests {
		got, err := schnorrbatch.ParseMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := schnorrbatch.ParseMode("partial")
	assert.Error(t, err)

	assert.Equal(t, "deposit", schnorrbatch.ModeDeposit.String())
}
