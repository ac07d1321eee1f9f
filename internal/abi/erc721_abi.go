package abi

// erc721 is the standard NFT interface (EIP-721). balanceOf(address) collides
// with ERC20 and resolves there; the ownership and transfer functions are
// unique to this definition.
//
//	ownerOf(uint256)                     → 0x6352211e
//	safeTransferFrom(a,a,u256)           → 0x42842e0e
//	safeTransferFrom(a,a,u256,bytes)     → 0xb88d4fde
//	setApprovalForAll(address,bool)      → 0xa22cb465
var erc721Definition = Definition{
	Name: "ERC721",
	Entries: []Entry{
		{
			Name: "balanceOf", Type: "function",
			Inputs:          []Param{{Name: "owner", Type: "address"}},
			Outputs:         []Param{{Name: "", Type: "uint256"}},
			StateMutability: "view",
		},
		{
			Name: "ownerOf", Type: "function",
			Inputs:          []Param{{Name: "tokenId", Type: "uint256"}},
			Outputs:         []Param{{Name: "", Type: "address"}},
			StateMutability: "view",
		},
		{
			Name: "transferFrom", Type: "function",
			Inputs: []Param{
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
			},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
		{
			Name: "safeTransferFrom", Type: "function",
			Inputs: []Param{
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
			},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
		{
			Name: "safeTransferFrom", Type: "function",
			Inputs: []Param{
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
				{Name: "data", Type: "bytes"},
			},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
		{
			Name: "approve", Type: "function",
			Inputs:          []Param{{Name: "to", Type: "address"}, {Name: "tokenId", Type: "uint256"}},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
		{
			Name: "setApprovalForAll", Type: "function",
			Inputs:          []Param{{Name: "operator", Type: "address"}, {Name: "approved", Type: "bool"}},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
	},
}
