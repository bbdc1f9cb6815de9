package schnorrbatch

// Challenge computes e = Keccak256(binding ‖ parity ‖ x ‖ message).
//
// The fields are concatenated with no prefixes or separators: the binder
// output, a single parity byte, the 32-byte x-coordinate and the 32-byte
// message. Signers must use this function so both sides agree bit for bit.
func Challenge(binding []byte, parity Parity, x [FieldSize]byte, message Message) [FieldSize]byte {
	return keccak256(binding, []byte{byte(parity)}, x[:], message[:])
}

// PayloadMessage hashes a single payload, flattened in order.
func PayloadMessage(payload ValueList) Message {
	return Message(keccak256(flatten(payload)))
}

// JointMessage hashes every payload of a batch, flattened in caller order into
// one byte string. Every signer of a joint batch attests to the whole batch,
// so reordering or replacing any payload changes the message for all of them.
func JointMessage(payloads []ValueList) Message {
	size := 0
	for _, p := range payloads {
		size += len(p) * FieldSize
	}
	buf := make([]byte, 0, size)
	for _, p := range payloads {
		buf = append(buf, flatten(p)...)
	}
	return Message(keccak256(buf))
}

func flatten(payload ValueList) []byte {
	buf := make([]byte, 0, len(payload)*FieldSize)
	for i := range payload {
		buf = append(buf, payload[i][:]...)
	}
	return buf
}
