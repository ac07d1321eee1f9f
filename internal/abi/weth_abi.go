package abi

// weth is the Wrapped Ether contract (WETH9). It shares the ERC-20 transfer
// surface — those selectors collide with the ERC20 definition on purpose and
// resolve to ERC20 because it precedes this one in the catalogue.
//
//	deposit()           → 0xd0e30db0
//	withdraw(uint256)   → 0x2e1a7d4d
var wethDefinition = Definition{
	Name: "WETH",
	Entries: []Entry{
		{
			Name: "deposit", Type: "function",
			Inputs: nil, Outputs: nil,
			StateMutability: "payable",
		},
		{
			Name: "withdraw", Type: "function",
			Inputs:          []Param{{Name: "wad", Type: "uint256"}},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
		{
			Name: "transfer", Type: "function",
			Inputs:          []Param{{Name: "dst", Type: "address"}, {Name: "wad", Type: "uint256"}},
			Outputs:         []Param{{Name: "", Type: "bool"}},
			StateMutability: "nonpayable",
		},
		{
			Name: "approve", Type: "function",
			Inputs:          []Param{{Name: "guy", Type: "address"}, {Name: "wad", Type: "uint256"}},
			Outputs:         []Param{{Name: "", Type: "bool"}},
			StateMutability: "nonpayable",
		},
	},
}
