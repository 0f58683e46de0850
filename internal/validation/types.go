// Package validation checks headers and blocks against consensus rules.
package validation

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/difficulty"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HeaderChainReader is the read-only chain access of the header validator.
	HeaderChainReader interface {
		FetchHeader(ctx context.Context, height uint64) (*model.BlockHeader, error)
		FetchHeaderAccumulatedData(ctx context.Context, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error)
		BadBlockExists(ctx context.Context, hash chainhash.Hash) (bool, error)
		FetchPowSeedFirstSeenHeight(ctx context.Context, seed []byte) (uint64, error)
	}
	// UTXOReader is the read-only output set access of the body validator.
	UTXOReader interface {
		FetchUnspentOutputHashByCommitment(ctx context.Context, commitment model.Commitment) (*chainhash.Hash, error)
		FetchOutput(ctx context.Context, hash chainhash.Hash) (*model.TransactionOutput, error)
	}
	// BlockChainReader is everything needed to validate a full block.
	BlockChainReader interface {
		HeaderChainReader
		UTXOReader
	}
	DifficultyCalculator interface {
		CheckAchievedDifficulty(header *model.BlockHeader, target model.Difficulty) (model.AchievedTargetDifficulty, error)
		CheckAchievedAndTargetDifficulty(ctx context.Context, db difficulty.ChainReader, header *model.BlockHeader) (model.AchievedTargetDifficulty, error)
	}
	// CryptoVerifier checks signatures, range proofs and commitment balance.
	CryptoVerifier interface {
		VerifyKernelSignature(kernel *model.TransactionKernel) error
		VerifyRangeProof(output *model.TransactionOutput) error
		VerifyBalance(terms model.BalanceTerms) error
	}
	Metrics interface {
		ObserveValidation(stage string, err error, started time.Time)
	}
)
