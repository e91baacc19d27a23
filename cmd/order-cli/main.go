package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bos/internal/service/order"
	"github.com/vladislavdragonenkov/bos/internal/service/pricing"
	"github.com/vladislavdragonenkov/bos/internal/storage/memory"
)

// parseItems разбирает JSON-список позиций заказа.
func parseItems(raw string) ([]order.ItemInput, error) {
	var items []order.ItemInput
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("items must be a JSON list: %w", err)
	}
	return items, nil
}

// ensureProductIDs заполняет отсутствующие product_id последовательными
// номерами, начиная с 1. Отсутствующую цену CLI не домысливает:
// такая позиция будет отклонена use case-ом.
func ensureProductIDs(items []order.ItemInput) []order.ItemInput {
	enriched := make([]order.ItemInput, 0, len(items))
	for idx, item := range items {
		if item.ProductID == nil {
			id := int64(idx + 1)
			item.ProductID = &id
		}
		enriched = append(enriched, item)
	}
	return enriched
}

// run выполняет сценарий целиком и возвращает итоговую сумму со скидкой.
func run(userID int64, rawItems string, discount int64, logger *log.Entry) (string, error) {
	items, err := parseItems(rawItems)
	if err != nil {
		return "", err
	}
	items = ensureProductIDs(items)

	useCase := order.NewCreateOrderUseCase(
		memory.NewOrderRepository(),
		pricing.NewDiscountService(),
		nil,
		logger,
	)

	total, err := useCase.Execute(context.Background(), userID, items, discount)
	if err != nil {
		return "", err
	}
	return total.String(), nil
}

func main() {
	userID := flag.Int64("user", 0, "идентификатор пользователя")
	items := flag.String("items", "", "JSON-список позиций заказа")
	discount := flag.Int64("discount", 0, "скидка в процентах на итоговую сумму")
	flag.Parse()

	if *userID <= 0 || *items == "" {
		fmt.Fprintln(os.Stderr, "usage: order-cli --user <id> --items <json> [--discount <percent>]")
		os.Exit(2)
	}

	// Логи CLI не должны мешать полезному выводу.
	logger := log.New()
	logger.SetLevel(log.WarnLevel)

	total, err := run(*userID, *items, *discount, logger.WithField("component", "order-cli"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "order failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("total after discount: %s\n", total)
}
