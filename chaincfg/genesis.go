// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// GenesisInvariantViolated is returned (and, at package init, panicked
// with) when a constructed genesis block's hash or merkle root doesn't
// match the value this chain was defined with. It's a programmer error,
// not a runtime condition — if it fires, genesis construction itself was
// edited incorrectly, and continuing would silently run a fork.
type GenesisInvariantViolated struct {
	Network Network
	Reason  string
}

// Error satisfies the error interface.
func (e *GenesisInvariantViolated) Error() string {
	return fmt.Sprintf("chaincfg: genesis invariant violated for %s: %s", e.Network, e.Reason)
}

// Genesis is the synthesized genesis block: a single coinbase transaction
// whose scriptSig encodes the fixed literal 486604799 (0x1d00ffff), the
// constant 4 and the network's founding timestamp, and an 80-byte header
// built over it.
//
// This intentionally doesn't reuse a general MsgBlock/MsgTx type — block
// and transaction serialization stay out of this core's scope — it's the
// minimal structure needed to reproduce the genesis hash and merkle root
// bit-for-bit.
type Genesis struct {
	Version      int32
	Time         uint32
	Bits         uint32
	Nonce        uint32
	Message      string
	OutputScript []byte
	Reward       int64

	Hash       chainhash.Hash
	MerkleRoot chainhash.Hash
}

// scriptNumSerialize encodes n the way Bitcoin-lineage CScriptNum does:
// minimal little-endian magnitude bytes, with the sign folded into the
// high bit of the last byte (adding a zero byte first if that bit is
// already occupied by magnitude).
func scriptNumSerialize(n int64) []byte {
	if n == 0 {
		return nil
	}
	neg := n < 0
	abs := uint64(n)
	if neg {
		abs = uint64(-n)
	}

	var result []byte
	for abs != 0 {
		result = append(result, byte(abs&0xff))
		abs >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if neg {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if neg {
		result[len(result)-1] |= 0x80
	}
	return result
}

// pushData encodes data as a single script push: a one-byte length prefix
// for payloads of 75 bytes or fewer (the direct-push opcode range), or
// OP_PUSHDATA1 (0x4c) plus a one-byte length for payloads up to 255 bytes.
// The genesis scripts built in this package never need anything larger.
func pushData(data []byte) []byte {
	switch {
	case len(data) == 0:
		return []byte{0x00} // OP_0
	case len(data) <= 75:
		return append([]byte{byte(len(data))}, data...)
	case len(data) <= 255:
		return append([]byte{0x4c, byte(len(data))}, data...)
	default:
		panic("chaincfg: genesis script push exceeds 255 bytes")
	}
}

// coinbaseScriptSig reproduces the historical Bitcoin-lineage genesis
// scriptSig: a push of the literal 486604799 (the NY Times headline's
// block 0x1d00ffff reference, fixed regardless of this chain's actual
// genesis bits), a push of the constant 4, and a push of the founding
// timestamp string.
func coinbaseScriptSig(message string) []byte {
	var sig []byte
	sig = append(sig, pushData(scriptNumSerialize(486604799))...)
	sig = append(sig, pushData(scriptNumSerialize(4))...)
	sig = append(sig, pushData([]byte(message))...)
	return sig
}

// serializeCoinbaseTx serializes the one-input, one-output genesis
// coinbase transaction in the legacy (non-witness) wire format.
func serializeCoinbaseTx(scriptSig, outputScript []byte, reward int64) []byte {
	buf := make([]byte, 0, 128+len(scriptSig)+len(outputScript))

	var tmp [8]byte
	binary.LittleEndian.PutUint32(tmp[:4], 1) // tx version
	buf = append(buf, tmp[:4]...)

	buf = append(buf, 0x01) // varint: 1 input

	buf = append(buf, make([]byte, 32)...)     // null previous-output hash
	binary.LittleEndian.PutUint32(tmp[:4], 0xffffffff)
	buf = append(buf, tmp[:4]...) // previous-output index

	buf = append(buf, varInt(uint64(len(scriptSig)))...)
	buf = append(buf, scriptSig...)

	binary.LittleEndian.PutUint32(tmp[:4], 0xffffffff)
	buf = append(buf, tmp[:4]...) // sequence

	buf = append(buf, 0x01) // varint: 1 output

	binary.LittleEndian.PutUint64(tmp[:8], uint64(reward))
	buf = append(buf, tmp[:8]...)

	buf = append(buf, varInt(uint64(len(outputScript)))...)
	buf = append(buf, outputScript...)

	binary.LittleEndian.PutUint32(tmp[:4], 0) // locktime
	buf = append(buf, tmp[:4]...)

	return buf
}

// varInt encodes v as a Bitcoin-style variable-length integer. The
// genesis transaction only ever needs the single-byte range, but this is
// written generally since it costs nothing extra.
func varInt(v uint64) []byte {
	switch {
	case v < 0xfd:
		return []byte{byte(v)}
	case v <= 0xffff:
		b := make([]byte, 3)
		b[0] = 0xfd
		binary.LittleEndian.PutUint16(b[1:], uint16(v))
		return b
	case v <= 0xffffffff:
		b := make([]byte, 5)
		b[0] = 0xfe
		binary.LittleEndian.PutUint32(b[1:], uint32(v))
		return b
	default:
		b := make([]byte, 9)
		b[0] = 0xff
		binary.LittleEndian.PutUint64(b[1:], v)
		return b
	}
}

// serializeHeader serializes the 80-byte genesis block header.
func serializeHeader(version int32, prevBlock, merkleRoot [32]byte, t, bits, nonce uint32) []byte {
	buf := make([]byte, 80)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(version))
	copy(buf[4:36], prevBlock[:])
	copy(buf[36:68], merkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], t)
	binary.LittleEndian.PutUint32(buf[72:76], bits)
	binary.LittleEndian.PutUint32(buf[76:80], nonce)
	return buf
}

// buildGenesis constructs the genesis block's coinbase transaction and
// header and computes their hashes. It mirrors CreateGenesisBlock from
// the original C++ implementation.
func buildGenesis(message string, outputScript []byte, t, nonce, bits uint32, version int32, reward int64) Genesis {
	scriptSig := coinbaseScriptSig(message)
	txBytes := serializeCoinbaseTx(scriptSig, outputScript, reward)

	// A block with a single transaction has a merkle root equal to that
	// transaction's own hash — there's nothing to pair it with.
	var merkleRoot [32]byte
	copy(merkleRoot[:], chainhash.DoubleHashB(txBytes))

	var zeroPrev [32]byte
	headerBytes := serializeHeader(version, zeroPrev, merkleRoot, t, bits, nonce)
	var blockHash [32]byte
	copy(blockHash[:], chainhash.DoubleHashB(headerBytes))

	g := Genesis{
		Version:      version,
		Time:         t,
		Bits:         bits,
		Nonce:        nonce,
		Message:      message,
		OutputScript: outputScript,
		Reward:       reward,
	}
	copy(g.Hash[:], blockHash[:])
	copy(g.MerkleRoot[:], merkleRoot[:])
	return g
}

// mustGenesis builds the genesis block and asserts it matches the
// documented hash and merkle root for network, panicking with a
// GenesisInvariantViolated if it doesn't. Called only from package-level
// var initialization.
func mustGenesis(network Network, message string, outputScript []byte, t, nonce, bits uint32, version int32, reward int64, wantHash, wantMerkle string) Genesis {
	g := buildGenesis(message, outputScript, t, nonce, bits, version, reward)

	wantHashHash, err := chainhash.NewHashFromStr(wantHash)
	if err != nil {
		panic(&GenesisInvariantViolated{Network: network, Reason: "malformed expected hash constant: " + err.Error()})
	}
	if !g.Hash.IsEqual(wantHashHash) {
		log.Criticalf("genesis hash mismatch for %s: computed %s, expected %s", network, g.Hash, wantHash)
		panic(&GenesisInvariantViolated{
			Network: network,
			Reason:  fmt.Sprintf("computed genesis hash %s != expected %s", g.Hash, wantHash),
		})
	}

	wantMerkleHash, err := chainhash.NewHashFromStr(wantMerkle)
	if err != nil {
		panic(&GenesisInvariantViolated{Network: network, Reason: "malformed expected merkle root constant: " + err.Error()})
	}
	if !g.MerkleRoot.IsEqual(wantMerkleHash) {
		panic(&GenesisInvariantViolated{
			Network: network,
			Reason:  fmt.Sprintf("computed merkle root %s != expected %s", g.MerkleRoot, wantMerkle),
		})
	}

	return g
}

// p2pkhScript builds a standard OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY
// OP_CHECKSIG output script from a 20-byte public key hash.
func p2pkhScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, 0x76, 0xa9) // OP_DUP OP_HASH160
	script = append(script, pushData(pubKeyHash)...)
	script = append(script, 0x88, 0xac) // OP_EQUALVERIFY OP_CHECKSIG
	return script
}

// pubKeyScript builds a bare <pubkey> OP_CHECKSIG output script, the form
// used by regtest's simulated-Litecoin genesis.
func pubKeyScript(pubKey []byte) []byte {
	script := make([]byte, 0, len(pubKey)+2)
	script = append(script, pushData(pubKey)...)
	script = append(script, 0xac) // OP_CHECKSIG
	return script
}
