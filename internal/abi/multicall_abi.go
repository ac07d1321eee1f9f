package abi

// multicall covers the two common call-batching surfaces: Uniswap-style
// multicall(bytes[]) and Multicall2-style aggregate over (target, callData)
// tuples.
//
//	multicall(bytes[])                  → 0xac9650d8
//	aggregate((address,bytes)[])        → 0x252dba42
var multicallDefinition = Definition{
	Name: "Multicall",
	Entries: []Entry{
		{
			Name: "multicall", Type: "function",
			Inputs:          []Param{{Name: "data", Type: "bytes[]"}},
			Outputs:         []Param{{Name: "results", Type: "bytes[]"}},
			StateMutability: "payable",
		},
		{
			Name: "aggregate", Type: "function",
			Inputs: []Param{
				{
					Name: "calls", Type: "tuple[]",
					Components: []Param{
						{Name: "target", Type: "address"},
						{Name: "callData", Type: "bytes"},
					},
				},
			},
			Outputs: []Param{
				{Name: "blockNumber", Type: "uint256"},
				{Name: "returnData", Type: "bytes[]"},
			},
			StateMutability: "payable",
		},
	},
}
