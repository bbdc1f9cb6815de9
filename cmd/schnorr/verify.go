package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
)

var (
	verifyParity  uint8
	verifyPX      string
	verifyMessage string
	verifyE       string
	verifyS       string
)

func init() {
	verifyCmd.Flags().Uint8VarP(&verifyParity, "parity", "p", 0, "Public key parity marker (27 = even, 28 = odd)")
	verifyCmd.Flags().StringVar(&verifyPX, "px", "", "Public key x-coordinate (32 bytes hex)")
	verifyCmd.Flags().StringVarP(&verifyMessage, "message", "m", "", "Message digest (32 bytes hex)")
	verifyCmd.Flags().StringVar(&verifyE, "e", "", "Signature challenge (32 bytes hex)")
	verifyCmd.Flags().StringVar(&verifyS, "s", "", "Signature response (32 bytes hex)")
	for _, name := range []string{"parity", "px", "message", "e", "s"} {
		_ = verifyCmd.MarkFlagRequired(name)
	}
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a single signature",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := schnorrbatch.Verify(
			verifyParity,
			decodeHex("px", verifyPX),
			decodeHex("message", verifyMessage),
			decodeHex("e", verifyE),
			decodeHex("s", verifyS),
		)
		if err != nil {
			reportErrorf("Error: %v", err)
		}
		if !ok {
			fmt.Println("invalid")
			os.Exit(1)
		}
		fmt.Println("valid")
	},
}
