package evm

// PullContractABI is the ABI of the oracle pull contract entry point. verifyOracleProof
// checks the proof on chain and returns the verified price data.
const PullContractABI = `[
  {
    "inputs": [
      {"internalType": "bytes", "name": "_bytesProof", "type": "bytes"}
    ],
    "name": "verifyOracleProof",
    "outputs": [
      {
        "components": [
          {"internalType": "uint256[]", "name": "pairs", "type": "uint256[]"},
          {"internalType": "uint256[]", "name": "prices", "type": "uint256[]"},
          {"internalType": "uint256[]", "name": "decimal", "type": "uint256[]"}
        ],
        "internalType": "struct ISupraOraclePull.PriceData",
        "name": "",
        "type": "tuple"
      }
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]`

// DefaultMethod is the contract method proofs are submitted to.
const DefaultMethod = "verifyOracleProof"
