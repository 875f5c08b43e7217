package engine

import (
	"go-flatdb/pkg/types"
)

// Prefixes qualifying the columns of the left and right join inputs.
const (
	LeftPrefix  = "table1_"
	RightPrefix = "table2_"
)

// Join writes the inner equi-join of left and right on leftCol = rightCol to
// output. Values compare as exact text.
//
// left is read one chunk at a time and right is fully scanned once per left
// chunk. Output rows are the left fields followed by the right fields.
func (e *Engine) Join(left, right, leftCol, rightCol, output string) (res *JoinResult, err error) {
	finish := e.track("join", left)
	defer func() { finish(err, res.rows()) }()

	if output, err = outputName(output, DefaultJoinOutput); err != nil {
		return nil, err
	}

	lt, err := e.open(left)
	if err != nil {
		return nil, err
	}
	rt, err := e.open(right)
	if err != nil {
		return nil, err
	}

	lp, err := lt.Columns().Position(leftCol)
	if err != nil {
		return nil, err
	}
	rp, err := rt.Columns().Position(rightCol)
	if err != nil {
		return nil, err
	}

	header := append(lt.Columns().Qualify(LeftPrefix), rt.Columns().Qualify(RightPrefix)...)
	st, err := e.output(output, header)
	if err != nil {
		return nil, err
	}
	defer st.Discard()

	passes := 0
	err = lt.Chunks(e.cfg.ChunkSize, func(outer types.Chunk) error {
		passes++
		byVal := make(map[string][]types.Row, len(outer))
		for _, row := range outer {
			byVal[row[lp]] = append(byVal[row[lp]], row)
		}

		return rt.Scan(func(inner types.Row) error {
			for _, o := range byVal[inner[rp]] {
				joined := make(types.Row, 0, len(o)+len(inner))
				joined = append(joined, o...)
				joined = append(joined, inner...)
				if err := st.Write(joined); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	out, err := e.commitOutput(output, st)
	if err != nil {
		return nil, err
	}
	e.log.WithField("passes", passes).Debug("joined")
	return &JoinResult{OutputResult: *out, InnerPasses: passes}, nil
}
