package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/chrisdamba/burgerbar/internal/menu"
	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/output"
	"github.com/chrisdamba/burgerbar/internal/pos"
)

// Session drives the interactive ordering loop: catalogue display, item
// number prompts, order placement through the assembler, receipt rendering
// and the purchase/repeat prompts. All input validation happens here so
// only known ids ever reach the core. The session ends when the customer
// declines another order or the input stream closes.
type Session struct {
	Catalogue *menu.Catalogue
	Assembler *pos.Assembler
	Output    output.Destination
	In        io.Reader
	Out       io.Writer
}

func (s *Session) Run() error {
	defer func() {
		if err := s.Output.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	scanner := bufio.NewScanner(s.In)

	fmt.Fprintln(s.Out, "Welcome to the Burger Bar!")
	fmt.Fprintln(s.Out, "Loading catalogue...")
	s.Catalogue.Render(s.Out)

	for {
		fmt.Fprintln(s.Out, "Please enter the number of items that you would like to add to your order. Enter q to complete your order.")

		requestIDs, more, err := s.readOrder(scanner)
		if err != nil {
			return err
		}
		if !more && len(requestIDs) == 0 {
			break
		}

		fmt.Fprintln(s.Out, "Placing order ...")

		summary, err := s.Assembler.PlaceOrder(context.Background(), requestIDs)
		if err != nil {
			return fmt.Errorf("order attempt failed: %w", err)
		}

		s.renderSummary(summary)

		answer, ok := s.prompt(scanner, fmt.Sprintf("Would you like to purchase this order for $%.2f (yes/no)? ", summary.Total))
		if answer == "yes" {
			fmt.Fprintln(s.Out, "Thank you for your order!")
			s.emit(summary)
		}
		if !ok {
			break
		}

		again, ok := s.prompt(scanner, "Would you like to make another order (yes/no)? ")
		if !ok || again == "no" {
			break
		}
	}

	fmt.Fprintln(s.Out, "Goodbye")
	return nil
}

// readOrder collects item numbers until q. Non-numeric and out-of-range
// entries are re-prompted so the core only ever sees catalogue ids. The
// second return value is false once the input stream is exhausted.
func (s *Session) readOrder(scanner *bufio.Scanner) ([]int, bool, error) {
	var requestIDs []int
	for {
		fmt.Fprint(s.Out, "Enter an item number: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, false, fmt.Errorf("reading input: %w", err)
			}
			return requestIDs, false, nil
		}
		entry := strings.TrimSpace(scanner.Text())

		if entry == "q" {
			return requestIDs, true, nil
		}

		id, err := strconv.Atoi(entry)
		if err != nil || id < 0 {
			fmt.Fprintln(s.Out, "Please enter a valid number.")
			continue
		}
		if id > s.Catalogue.MaxID() {
			fmt.Fprintf(s.Out, "Please enter a number below %d.\n", s.Catalogue.MaxID()+1)
			continue
		}
		if _, ok := s.Catalogue.ItemByID(id); !ok {
			fmt.Fprintln(s.Out, "Please enter a valid number.")
			continue
		}

		requestIDs = append(requestIDs, id)
	}
}

func (s *Session) renderSummary(summary models.OrderSummary) {
	for _, rejection := range summary.Rejected {
		fmt.Fprintf(s.Out, "Unfortunately item number %d is out of stock and has been removed from your order. Sorry!\n", rejection.ItemID)
	}

	fmt.Fprintf(s.Out, "Here is a summary of your order: \n\n")
	for _, bundle := range summary.Bundles {
		fmt.Fprintf(s.Out, "$%.2f Burger Combo\n", bundle.Price)
		for _, item := range bundle.Items() {
			fmt.Fprintf(s.Out, "\t %s\n", item.DisplayName())
		}
	}
	for _, item := range summary.Leftovers {
		fmt.Fprintf(s.Out, "$%.2f %s\n", item.Price, item.DisplayName())
	}

	fmt.Fprintf(s.Out, "\nSubtotal: $%.2f\n", summary.Subtotal)
	fmt.Fprintf(s.Out, "Tax: $%.2f\n", summary.Tax)
	fmt.Fprintf(s.Out, "Total: $%.2f\n\n", summary.Total)
}

func (s *Session) emit(summary models.OrderSummary) {
	event := output.NewOrderPlacedEvent(summary)
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing order event: %v", err)
		return
	}
	if err := s.Output.WriteMessage(output.TopicOrderEvents, msg); err != nil {
		log.Printf("Failed to write order event: %v", err)
	}
}

// prompt reads one answer. The second return value is false once the input
// stream is exhausted, which callers treat as the end of the session.
func (s *Session) prompt(scanner *bufio.Scanner, question string) (string, bool) {
	fmt.Fprint(s.Out, question)
	if !scanner.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text())), true
}
