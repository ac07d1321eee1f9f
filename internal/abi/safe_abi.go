package abi

// safe is the Gnosis Safe multisig execution surface. execTransaction wraps
// an inner call: `to`, `value` and `data` carry the forwarded call, the rest
// is gas accounting and signatures.
//
//	execTransaction(...) → 0x6a761202
var safeDefinition = Definition{
	Name: "Safe",
	Entries: []Entry{
		{
			Name: "execTransaction", Type: "function",
			Inputs: []Param{
				{Name: "to", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "data", Type: "bytes"},
				{Name: "operation", Type: "uint8"},
				{Name: "safeTxGas", Type: "uint256"},
				{Name: "baseGas", Type: "uint256"},
				{Name: "gasPrice", Type: "uint256"},
				{Name: "gasToken", Type: "address"},
				{Name: "refundReceiver", Type: "address"},
				{Name: "signatures", Type: "bytes"},
			},
			Outputs:         []Param{{Name: "success", Type: "bool"}},
			StateMutability: "payable",
		},
		{
			Name: "getThreshold", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "uint256"}},
			StateMutability: "view",
		},
		{
			Name: "getOwners", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "address[]"}},
			StateMutability: "view",
		},
		{
			Name: "nonce", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "uint256"}},
			StateMutability: "view",
		},
	},
}
