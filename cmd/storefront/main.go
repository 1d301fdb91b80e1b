// Command storefront hosts the session core in a terminal: it hydrates a
// session from the profile store, parses the product catalog, and drives
// the add/favorite/sort/search operations from stdin. One command line is
// one UI event; the pipeline for each runs to completion before the next.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nhattran/techmart/internal/calculator"
	"github.com/nhattran/techmart/internal/catalog"
	"github.com/nhattran/techmart/internal/config"
	"github.com/nhattran/techmart/internal/metrics"
	"github.com/nhattran/techmart/internal/notify"
	"github.com/nhattran/techmart/internal/service"
	"github.com/nhattran/techmart/internal/storage"
	"github.com/nhattran/techmart/internal/storage/sqlite"
	"github.com/nhattran/techmart/internal/ui"
	"github.com/nhattran/techmart/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	toaster := notify.NewToaster(cfg.ToastTTL)
	sink := notify.Multi{toaster, notify.LogSink{}}

	// A broken profile degrades the session to memory-only, it never
	// prevents the page from working.
	var store storage.Store
	if s, err := sqlite.New(cfg.ProfilePath); err != nil {
		slog.Warn("profile unavailable, continuing in-memory", "path", cfg.ProfilePath, "error", err)
		sink.Notify("Không thể truy cập giỏ hàng. Vui lòng kiểm tra cài đặt trình duyệt.")
		store = storage.NewMemory()
	} else {
		store = s
		slog.Info("profile opened", "path", cfg.ProfilePath)
	}
	defer store.Close()

	cards, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Warn("catalog unavailable", "path", cfg.CatalogPath, "error", err)
	}
	slog.Info("catalog loaded", "products", len(cards))

	board := ui.NewBoard(ui.TargetCartCount, ui.TargetCartTotal, ui.TargetFavCount)
	session := service.NewSession(store, ui.NewProjector(board, sink), sink, metrics.New())
	session.Hydrate(context.Background())
	slog.Info("session started", "session_id", session.ID())

	runLoop(session, board, toaster, cards)
}

func loadCatalog(path string) ([]catalog.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.Parse(f)
}

func runLoop(session *service.Session, board *ui.Board, toaster *notify.Toaster, cards []catalog.Card) {
	ctx := context.Background()
	visible := cards
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("techmart — lệnh: list, add <n>, fav <n>, cart, sort <priceAsc|priceDesc|popular>, search <từ khóa>, charge <máy> <pin%> <watt>, quit")
	printStatus(board)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return

		case "list":
			for i, card := range visible {
				fmt.Printf("%2d. %s — %s\n", i+1, card.Name, card.PriceText)
			}

		case "add":
			if card, ok := pickCard(visible, args); ok {
				session.AddCard(ctx, card)
			}

		case "fav":
			if card, ok := pickCard(visible, args); ok {
				session.ToggleFavorite(ctx, card.Name)
			}

		case "cart":
			for _, line := range session.CartLines() {
				fmt.Printf("%dx %s — %s\n", line.Quantity, line.Name, ui.FormatVND(line.Subtotal()))
			}

		case "sort":
			if len(args) == 1 {
				catalog.Sort(visible, catalog.SortMode(args[0]))
			}

		case "search":
			visible = catalog.Search(cards, strings.Join(args, " "))
			fmt.Printf("%d sản phẩm\n", len(visible))

		case "charge":
			runCharge(args)

		default:
			fmt.Printf("không hiểu lệnh %q\n", cmd)
			continue
		}

		printStatus(board)
		for _, toast := range toaster.Active() {
			fmt.Printf("  [toast] %s\n", toast.Message)
		}
	}
}

func pickCard(cards []catalog.Card, args []string) (catalog.Card, bool) {
	if len(args) != 1 {
		fmt.Println("cần số thứ tự sản phẩm")
		return catalog.Card{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(cards) {
		fmt.Println("số thứ tự không hợp lệ")
		return catalog.Card{}, false
	}
	return cards[n-1], true
}

func runCharge(args []string) {
	if len(args) != 3 {
		fmt.Println("cú pháp: charge <máy> <pin%> <watt>")
		return
	}
	percent, err1 := strconv.Atoi(args[1])
	watts, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil {
		fmt.Println("pin% và watt phải là số")
		return
	}

	est, err := calculator.ChargeTime(args[0], percent, watts)
	if err != nil {
		fmt.Printf("không tính được: %v\n", err)
		return
	}
	fmt.Printf("%d%% → 100%%: %dh %dp (sạc hiệu dụng %dW)\n",
		percent, est.Hours, est.Minutes, est.EffectiveWatts)
}

func printStatus(board *ui.Board) {
	fmt.Printf("Giỏ hàng: %s sản phẩm — %s | Yêu thích %s\n",
		board.Text(ui.TargetCartCount),
		board.Text(ui.TargetCartTotal),
		board.Text(ui.TargetFavCount),
	)
}
