package abi

// erc20 is the standard ERC-20 interface (EIP-20).
//
// Function selectors:
//
//	name()              → 0x06fdde03
//	symbol()            → 0x95d89b41
//	decimals()          → 0x313ce567
//	totalSupply()       → 0x18160ddd
//	balanceOf(address)  → 0x70a08231
//	allowance(a,a)      → 0xdd62ed3e
//	transfer(a,u256)    → 0xa9059cbb
//	approve(a,u256)     → 0x095ea7b3
//	transferFrom(a,a,u) → 0x23b872dd
var erc20Definition = Definition{
	Name: "ERC20",
	Entries: []Entry{
		// ── Read ─────────────────────────────────────────────────────────────
		{
			Name: "name", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "string"}},
			StateMutability: "view",
		},
		{
			Name: "symbol", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "string"}},
			StateMutability: "view",
		},
		{
			Name: "decimals", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "uint8"}},
			StateMutability: "view",
		},
		{
			Name: "totalSupply", Type: "function",
			Inputs: nil, Outputs: []Param{{Name: "", Type: "uint256"}},
			StateMutability: "view",
		},
		{
			Name: "balanceOf", Type: "function",
			Inputs:          []Param{{Name: "account", Type: "address"}},
			Outputs:         []Param{{Name: "", Type: "uint256"}},
			StateMutability: "view",
		},
		{
			Name: "allowance", Type: "function",
			Inputs:          []Param{{Name: "owner", Type: "address"}, {Name: "spender", Type: "address"}},
			Outputs:         []Param{{Name: "", Type: "uint256"}},
			StateMutability: "view",
		},
		// ── Write ────────────────────────────────────────────────────────────
		{
			Name: "transfer", Type: "function",
			Inputs:          []Param{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
			Outputs:         []Param{{Name: "", Type: "bool"}},
			StateMutability: "nonpayable",
		},
		{
			Name: "approve", Type: "function",
			Inputs:          []Param{{Name: "spender", Type: "address"}, {Name: "amount", Type: "uint256"}},
			Outputs:         []Param{{Name: "", Type: "bool"}},
			StateMutability: "nonpayable",
		},
		{
			Name: "transferFrom", Type: "function",
			Inputs: []Param{
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "amount", Type: "uint256"},
			},
			Outputs:         []Param{{Name: "", Type: "bool"}},
			StateMutability: "nonpayable",
		},
	},
}
