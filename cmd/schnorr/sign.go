package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrsign"
)

var (
	signKey     string
	signMessage string

	genSigners int
	genValues  int
	genShape   string
	genOut     string
	genCorrupt int
)

func init() {
	signCmd.Flags().StringVarP(&signKey, "key", "k", "", "Private key (32 bytes hex)")
	signCmd.Flags().StringVarP(&signMessage, "message", "m", "", "Message digest (32 bytes hex)")
	_ = signCmd.MarkFlagRequired("key")
	_ = signCmd.MarkFlagRequired("message")

	genCmd.Flags().IntVarP(&genSigners, "signers", "n", 3, "Number of signers")
	genCmd.Flags().IntVar(&genValues, "values", schnorrbatch.DepositFieldCount, "Number of 32-byte values per payload")
	genCmd.Flags().StringVar(&genShape, "shape", "joint", "Batch shape (joint, independent or deposit)")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file (default: stdout)")
	genCmd.Flags().IntVar(&genCorrupt, "corrupt", -1, "Index of a signature to corrupt (-1 = none)")
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a random signing key",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := schnorrsign.GenerateKey()
		if err != nil {
			reportErrorf("Error: %v", err)
		}
		pub := schnorrsign.PublicKeyOf(key)
		fmt.Printf("private: 0x%s\n", hex.EncodeToString(key.Serialize()))
		fmt.Printf("parity:  %d\n", pub.Parity)
		fmt.Printf("px:      0x%s\n", hex.EncodeToString(pub.X[:]))
	},
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a 32-byte message digest with a random nonce",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := schnorrsign.ParsePrivateKey(signKey)
		if err != nil {
			reportErrorf("Error: %v", err)
		}
		msg, err := schnorrbatch.NewMessage(decodeHex("message", signMessage))
		if err != nil {
			reportErrorf("Error: %v", err)
		}

		item, err := schnorrsign.NewSigner().Sign(key, msg)
		if err != nil {
			reportErrorf("Error: %v", err)
		}
		fmt.Printf("parity: %d\n", item.PublicKey.Parity)
		fmt.Printf("px:     0x%s\n", hex.EncodeToString(item.PublicKey.X[:]))
		fmt.Printf("e:      0x%s\n", hex.EncodeToString(item.Signature.E[:]))
		fmt.Printf("s:      0x%s\n", hex.EncodeToString(item.Signature.S[:]))
	},
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a signed batch file with random keys and payloads",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		if genSigners < 0 || genValues < 0 {
			reportErrorf("Error: --signers and --values must not be negative")
		}
		mode, err := schnorrbatch.ParseMode(genShape)
		if err != nil {
			reportErrorf("Error: %v", err)
		}

		batch, err := generateBatch(mode, genSigners, genValues)
		if err != nil {
			reportErrorf("Error: %v", err)
		}
		if genCorrupt >= 0 {
			if genCorrupt >= len(batch.Items) {
				reportErrorf("Error: --corrupt %d out of range for %d signers", genCorrupt, len(batch.Items))
			}
			batch.Items[genCorrupt].Signature.S[0] ^= 0x01
		}

		out := os.Stdout
		if genOut != "" {
			f, err := os.Create(genOut)
			if err != nil {
				reportErrorf("Error: %v", err)
			}
			defer f.Close()
			out = f
		}
		if err := schnorrbatch.WriteJSON(out, batch); err != nil {
			reportErrorf("Error: %v", err)
		}
	},
}

func generateBatch(mode schnorrbatch.Mode, signers, values int) (*schnorrbatch.Batch, error) {
	keys, err := schnorrsign.RandomKeys(signers)
	if err != nil {
		return nil, err
	}
	signer := schnorrsign.NewSigner()

	if mode == schnorrbatch.ModeDeposit {
		payload, err := schnorrsign.RandomPayload(values)
		if err != nil {
			return nil, err
		}
		items, err := signer.SignDeposit(keys, payload)
		if err != nil {
			return nil, err
		}
		return &schnorrbatch.Batch{Items: items, Payload: payload}, nil
	}

	payloads := make([]schnorrbatch.ValueList, signers)
	for i := range payloads {
		if payloads[i], err = schnorrsign.RandomPayload(values); err != nil {
			return nil, err
		}
	}
	var items []schnorrbatch.BatchItem
	if mode == schnorrbatch.ModeIndependent {
		items, err = signer.SignIndependent(keys, payloads)
	} else {
		items, err = signer.SignJoint(keys, payloads)
	}
	if err != nil {
		return nil, err
	}
	return &schnorrbatch.Batch{Items: items, Payloads: payloads}, nil
}
