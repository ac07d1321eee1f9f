package abi

// account is the ERC-4337 smart-account execution surface (SimpleAccount).
// execute forwards a single inner call; executeBatch forwards several.
//
//	execute(address,uint256,bytes)      → 0xb61d27f6
//	executeBatch(address[],bytes[])     → 0x18dfb3c7
var accountDefinition = Definition{
	Name: "SmartAccount",
	Entries: []Entry{
		{
			Name: "execute", Type: "function",
			Inputs: []Param{
				{Name: "dest", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "func", Type: "bytes"},
			},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
		{
			Name: "executeBatch", Type: "function",
			Inputs: []Param{
				{Name: "dest", Type: "address[]"},
				{Name: "func", Type: "bytes[]"},
			},
			Outputs:         nil,
			StateMutability: "nonpayable",
		},
	},
}
