package service

import (
	"fmt"
	"strconv"
	"strings"

	"vulcan/domain/engine"
	"vulcan/domain/orderbook"
)

// Journal payloads are pipe-delimited text. Commands are small and replay
// is sequential, so readability wins over a binary layout here; the framing
// layer already carries type, seq, time and CRC.

func encodeAddOrder(trader, pair string, side orderbook.Side, typ orderbook.OrderType, price, qty int64) []byte {
	return []byte(fmt.Sprintf("%s|%s|%d|%d|%d|%d", trader, pair, side, typ, price, qty))
}

func parseAddOrder(data []byte) (trader, pair string, side orderbook.Side, typ orderbook.OrderType, price, qty int64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 6 {
		return "", "", 0, 0, 0, 0, fmt.Errorf("add-order payload: %q", data)
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, 0, 0, 0, err
	}
	t, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", "", 0, 0, 0, 0, err
	}
	price, err = strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return "", "", 0, 0, 0, 0, err
	}
	qty, err = strconv.ParseInt(parts[5], 10, 64)
	if err != nil {
		return "", "", 0, 0, 0, 0, err
	}
	return parts[0], parts[1], orderbook.Side(s), orderbook.OrderType(t), price, qty, nil
}

func encodeCancel(trader string, id uint64) []byte {
	return []byte(fmt.Sprintf("%s|%d", trader, id))
}

func parseCancel(data []byte) (trader string, id uint64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("cancel payload: %q", data)
	}
	id, err = strconv.ParseUint(parts[1], 10, 64)
	return parts[0], id, err
}

func encodeCancelReplace(trader string, id uint64, price, qty int64) []byte {
	return []byte(fmt.Sprintf("%s|%d|%d|%d", trader, id, price, qty))
}

func parseCancelReplace(data []byte) (trader string, id uint64, price, qty int64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 4 {
		return "", 0, 0, 0, fmt.Errorf("cancel-replace payload: %q", data)
	}
	id, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", 0, 0, 0, err
	}
	price, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", 0, 0, 0, err
	}
	qty, err = strconv.ParseInt(parts[3], 10, 64)
	return parts[0], id, price, qty, err
}

func encodeCancelAll(trader string, ids []uint64) []byte {
	strs := make([]string, 0, len(ids)+1)
	strs = append(strs, trader)
	for _, id := range ids {
		strs = append(strs, strconv.FormatUint(id, 10))
	}
	return []byte(strings.Join(strs, "|"))
}

func parseCancelAll(data []byte) (trader string, ids []uint64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) < 1 {
		return "", nil, fmt.Errorf("cancel-all payload: %q", data)
	}
	ids = make([]uint64, 0, len(parts)-1)
	for _, p := range parts[1:] {
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return "", nil, err
		}
		ids = append(ids, id)
	}
	return parts[0], ids, nil
}

func encodeSetMode(pair string, mode engine.AuctionMode) []byte {
	return []byte(fmt.Sprintf("%s|%d", pair, mode))
}

func parseSetMode(data []byte) (pair string, mode engine.AuctionMode, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("set-mode payload: %q", data)
	}
	m, err := strconv.Atoi(parts[1])
	return parts[0], engine.AuctionMode(m), err
}

func encodeAuctionPrice(pair string, price, pctBps int64) []byte {
	return []byte(fmt.Sprintf("%s|%d|%d", pair, price, pctBps))
}

func parseAuctionPrice(data []byte) (pair string, price, pctBps int64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("auction-price payload: %q", data)
	}
	price, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, 0, err
	}
	pctBps, err = strconv.ParseInt(parts[2], 10, 64)
	return parts[0], price, pctBps, err
}

func encodeAuctionBounds(pair string, lower, upper int64) []byte {
	return []byte(fmt.Sprintf("%s|%d|%d", pair, lower, upper))
}

func parseAuctionBounds(data []byte) (pair string, lower, upper int64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("auction-bounds payload: %q", data)
	}
	lower, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, 0, err
	}
	upper, err = strconv.ParseInt(parts[2], 10, 64)
	return parts[0], lower, upper, err
}

func encodeMatchAuction(pair string, maxMatches int) []byte {
	return []byte(fmt.Sprintf("%s|%d", pair, maxMatches))
}

func parseMatchAuction(data []byte) (pair string, maxMatches int, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("match-auction payload: %q", data)
	}
	maxMatches, err = strconv.Atoi(parts[1])
	return parts[0], maxMatches, err
}

func encodeUpdateRates(pair string, makerBps, takerBps int64) []byte {
	return []byte(fmt.Sprintf("%s|%d|%d", pair, makerBps, takerBps))
}

func parseUpdateRates(data []byte) (pair string, makerBps, takerBps int64, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("update-rates payload: %q", data)
	}
	makerBps, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, 0, err
	}
	takerBps, err = strconv.ParseInt(parts[2], 10, 64)
	return parts[0], makerBps, takerBps, err
}

func encodePair(cfg engine.PairConfig, mode engine.AuctionMode) []byte {
	return []byte(fmt.Sprintf("%s|%s|%s|%d|%d|%d|%d|%d|%d|%d|%d|%d|%d|%d",
		cfg.ID, cfg.BaseSymbol, cfg.QuoteSymbol,
		cfg.BaseDecimals, cfg.QuoteDecimals,
		cfg.BaseDisplayDecimals, cfg.QuoteDisplayDecimals,
		cfg.MinTradeAmount, cfg.MaxTradeAmount,
		cfg.MakerRateBps, cfg.TakerRateBps, cfg.MaxSlippageBps,
		cfg.AllowedTypes, mode))
}

func parsePair(data []byte) (cfg engine.PairConfig, mode engine.AuctionMode, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 14 {
		return cfg, 0, fmt.Errorf("add-pair payload: %q", data)
	}
	nums := make([]int64, 11)
	for i, p := range parts[3:] {
		nums[i], err = strconv.ParseInt(p, 10, 64)
		if err != nil {
			return cfg, 0, err
		}
	}
	cfg = engine.PairConfig{
		ID:                   parts[0],
		BaseSymbol:           parts[1],
		QuoteSymbol:          parts[2],
		BaseDecimals:         uint8(nums[0]),
		QuoteDecimals:        uint8(nums[1]),
		BaseDisplayDecimals:  uint8(nums[2]),
		QuoteDisplayDecimals: uint8(nums[3]),
		MinTradeAmount:       nums[4],
		MaxTradeAmount:       nums[5],
		MakerRateBps:         nums[6],
		TakerRateBps:         nums[7],
		MaxSlippageBps:       nums[8],
		AllowedTypes:         engine.TypeSet(nums[9]),
	}
	return cfg, engine.AuctionMode(nums[10]), nil
}

func encodePause(scope string, pair string, on bool) []byte {
	flag := 0
	if on {
		flag = 1
	}
	return []byte(fmt.Sprintf("%s|%s|%d", scope, pair, flag))
}

func parsePause(data []byte) (scope, pair string, on bool, err error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return "", "", false, fmt.Errorf("pause payload: %q", data)
	}
	return parts[0], parts[1], parts[2] == "1", nil
}
