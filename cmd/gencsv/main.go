//cmd/gencsv/main.go
package main

import (
    "encoding/csv"
    "flag"
    "fmt"
    "log"
    "math/rand"
    "os"
)

var firstNames = []string{"Asha", "Ravi", "Priya", "Amit", "Sunita", "Vikram", "Neha", "Rahul"}

func main() {
    out := flag.String("out", "seed/customers.csv", "output CSV path")
    count := flag.Int("count", 10, "number of customer rows")
    flag.Parse()

    f, err := os.Create(*out)
    if err != nil {
        log.Fatalf("failed to create %s: %v", *out, err)
    }
    defer f.Close()

    w := csv.NewWriter(f)
    w.Write([]string{"name", "phone", "loan_no", "amount", "due_date"})

    for i := 0; i < *count; i++ {
        name := firstNames[rand.Intn(len(firstNames))]
        row := []string{
            name,
            fmt.Sprintf("+9198%08d", rand.Intn(100000000)),
            fmt.Sprintf("L%04d", 1000+i),
            fmt.Sprintf("%d", (rand.Intn(90)+10)*500),
            fmt.Sprintf("%d May", rand.Intn(28)+1),
        }
        if err := w.Write(row); err != nil {
            log.Fatalf("failed to write row: %v", err)
        }
    }

    w.Flush()
    if err := w.Error(); err != nil {
        log.Fatalf("failed to flush %s: %v", *out, err)
    }
    fmt.Printf("Wrote %d customers to %s\n", *count, *out)
}
