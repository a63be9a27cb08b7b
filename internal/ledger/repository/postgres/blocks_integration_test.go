package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/trustrent/trustchain-backend/internal/ledger/model"
)

func testBlock(number uint64, property string, owner int64, prev *string) *model.Block {
	return &model.Block{
		BlockNumber:      number,
		PropertyID:       property,
		OwnerID:          owner,
		PreviousHash:     prev,
		CurrentHash:      strings.Repeat(fmt.Sprintf("%02d", number), 32),
		Timestamp:        time.Date(2024, 1, int(number), 12, 0, 0, 0, time.UTC),
		VerifiedBy:       owner,
		VerificationDate: time.Date(2024, 1, int(number), 12, 0, 0, 0, time.UTC),
	}
}

func (s *RepositorySuite) seedChain(n int) []*model.Block {
	s.metrics.EXPECT().Observe("insert_block", gomock.Nil(), gomock.Any()).Times(n)

	blocks := make([]*model.Block, 0, n)
	var prev *string
	for i := 1; i <= n; i++ {
		block := testBlock(uint64(i), fmt.Sprintf("PROP_%d", (i%2)+1), int64(i), prev)
		s.Require().NoError(s.repo.InsertBlock(s.testCtx, block))
		prev = &block.CurrentHash
		blocks = append(blocks, block)
	}
	return blocks
}

func (s *RepositorySuite) TestLastBlockEmptyChain() {
	s.metrics.EXPECT().Observe("last_block", gomock.Nil(), gomock.Any()).Times(1)

	last, err := s.repo.LastBlock(s.testCtx)
	s.Require().NoError(err)
	s.Nil(last)
}

func (s *RepositorySuite) TestInsertAndLastBlock() {
	s.seedChain(3)

	s.metrics.EXPECT().Observe("last_block", gomock.Nil(), gomock.Any()).Times(1)

	last, err := s.repo.LastBlock(s.testCtx)
	s.Require().NoError(err)
	s.Require().NotNil(last)
	s.Equal(uint64(3), last.BlockNumber)
	s.Equal(int64(3), s.countRows("ledger_block"))
}

func (s *RepositorySuite) TestInsertBlockDuplicateNumberIsConflict() {
	s.seedChain(1)

	s.metrics.EXPECT().Observe("insert_block", gomock.Any(), gomock.Any()).Times(1)

	dup := testBlock(1, "PROP_9", 9, nil)
	dup.CurrentHash = strings.Repeat("ff", 32)
	err := s.repo.InsertBlock(s.testCtx, dup)
	s.Require().ErrorIs(err, model.ErrAppendConflict)
	s.Equal(int64(1), s.countRows("ledger_block"))
}

func (s *RepositorySuite) TestBlocksByProperty() {
	s.seedChain(4)

	s.metrics.EXPECT().Observe("blocks_by_property", gomock.Nil(), gomock.Any()).Times(2)

	blocks, err := s.repo.BlocksByProperty(s.testCtx, "PROP_1")
	s.Require().NoError(err)
	s.Require().Len(blocks, 2)
	s.Equal(uint64(2), blocks[0].BlockNumber)
	s.Equal(uint64(4), blocks[1].BlockNumber)

	blocks, err = s.repo.BlocksByProperty(s.testCtx, "PROP_99")
	s.Require().NoError(err)
	s.Empty(blocks)
}

func (s *RepositorySuite) TestLatestBlockByProperty() {
	s.seedChain(4)

	s.metrics.EXPECT().Observe("latest_block_by_property", gomock.Nil(), gomock.Any()).Times(2)

	latest, err := s.repo.LatestBlockByProperty(s.testCtx, "PROP_1")
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(uint64(4), latest.BlockNumber)

	latest, err = s.repo.LatestBlockByProperty(s.testCtx, "PROP_99")
	s.Require().NoError(err)
	s.Nil(latest)
}

func (s *RepositorySuite) TestAllBlocksAscending() {
	s.seedChain(3)

	s.metrics.EXPECT().Observe("all_blocks", gomock.Nil(), gomock.Any()).Times(1)

	blocks, err := s.repo.AllBlocks(s.testCtx)
	s.Require().NoError(err)
	s.Require().Len(blocks, 3)
	for i, block := range blocks {
		s.Equal(uint64(i+1), block.BlockNumber)
	}
}

func (s *RepositorySuite) TestUpdateBlockHashes() {
	seeded := s.seedChain(2)

	s.metrics.EXPECT().Observe("update_block_hashes", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("all_blocks", gomock.Nil(), gomock.Any()).Times(1)

	newFirst := strings.Repeat("aa", 32)
	newSecond := strings.Repeat("bb", 32)
	updated := []model.Block{
		{BlockNumber: seeded[0].BlockNumber, CurrentHash: newFirst, PreviousHash: nil},
		{BlockNumber: seeded[1].BlockNumber, CurrentHash: newSecond, PreviousHash: &newFirst},
	}
	s.Require().NoError(s.repo.UpdateBlockHashes(s.testCtx, updated))

	blocks, err := s.repo.AllBlocks(s.testCtx)
	s.Require().NoError(err)
	s.Require().Len(blocks, 2)
	s.Equal(newFirst, blocks[0].CurrentHash)
	s.Equal(newSecond, blocks[1].CurrentHash)
	s.Require().NotNil(blocks[1].PreviousHash)
	s.Equal(newFirst, *blocks[1].PreviousHash)
	// Untouched columns survive the rewrite.
	s.Equal(seeded[0].PropertyID, blocks[0].PropertyID)
}

func (s *RepositorySuite) TestUpdateBlockHashesUnknownBlock() {
	s.seedChain(1)

	s.metrics.EXPECT().Observe("update_block_hashes", gomock.Any(), gomock.Any()).Times(1)

	err := s.repo.UpdateBlockHashes(s.testCtx, []model.Block{
		{BlockNumber: 99, CurrentHash: strings.Repeat("cc", 32)},
	})
	s.Require().Error(err)
}
