package cmd

import (
	"fmt"
	"strconv"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

var (
	companyName     string
	companyTurnover float64
	companyYears    int
	companyNetWorth float64
	companyGST      string
	companyPAN      string
	companyReg      string
	companyUdyam    string
	companyMSME     string

	projectName   string
	projectClient string
	projectValue  float64
	projectYear   int
)

// companyCmd represents the company command group
var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Maintain your company profile",
	Long: `Maintain the company profile used for compliance checks and
drafting. The profile is kept locally between invocations and pushed to the
backend with ` + "`jbi company save`" + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return companyShowCmd.RunE(cmd, args)
	},
}

var companyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the local company profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := newEnv()
		if err != nil {
			return err
		}
		form := store.LoadForm()
		fmt.Print(internal.RenderCompanyForm(form))
		if store.CompanyID != "" {
			fmt.Println(hintStyle.Render("Saved to backend as company #" + store.CompanyID))
		}
		return nil
	},
}

var companySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the profile to the backend",
	Long: `Merge any given flags into the local profile, validate it, and push
it to the backend. Company name, annual turnover and years in operation are
required; everything else is optional and persisted as explicit empty values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}

		form := store.LoadForm()
		mergeCompanyFlags(cmd, form)

		// Validation failures never reach the network.
		if err := form.Validate(); err != nil {
			return err
		}

		company, err := client.SaveCompany(cmd.Context(), form.Payload())
		if err != nil {
			return err
		}

		// Persist the shadow copy so the form restores on the next run.
		if err := store.SaveForm(form); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Profile saved (company #%d)", company.ID)))
		return nil
	},
}

var companyCertCmd = &cobra.Command{
	Use:   "cert <add|remove> <value|index>",
	Short: "Manage certification tags",
	Long:  `Add a certification tag (duplicates are rejected) or remove one by its index as shown by ` + "`jbi company show`" + `.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTagEdit(args, func(f *internal.CompanyForm, verb string, arg string) error {
			if verb == "add" {
				return f.AddCertification(arg)
			}
			index, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("remove takes an index, got %q", arg)
			}
			return f.RemoveCertification(index)
		})
	},
}

var companyDocCmd = &cobra.Command{
	Use:   "doc <add|remove> <value|index>",
	Short: "Manage available-document tags",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTagEdit(args, func(f *internal.CompanyForm, verb string, arg string) error {
			if verb == "add" {
				return f.AddDocument(arg)
			}
			index, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("remove takes an index, got %q", arg)
			}
			return f.RemoveDocument(index)
		})
	},
}

var companyProjectCmd = &cobra.Command{
	Use:   "project <add|remove> [index]",
	Short: "Manage past projects",
	Long: `Add a past project (--project-name and --client are required) or
remove one by index.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := newEnv()
		if err != nil {
			return err
		}
		form := store.LoadForm()

		switch args[0] {
		case "add":
			err = form.AddProject(internal.PastProject{
				Name:   projectName,
				Client: projectClient,
				Value:  projectValue,
				Year:   projectYear,
			})
		case "remove":
			if len(args) != 2 {
				return fmt.Errorf("remove takes an index")
			}
			var index int
			index, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("remove takes an index, got %q", args[1])
			}
			err = form.RemoveProject(index)
		default:
			return fmt.Errorf("unknown action %q (use add or remove)", args[0])
		}
		if err != nil {
			return err
		}

		if err := store.SaveForm(form); err != nil {
			return err
		}
		fmt.Print(internal.RenderCompanyForm(form))
		return nil
	},
}

func runTagEdit(args []string, edit func(*internal.CompanyForm, string, string) error) error {
	_, store, _, err := newEnv()
	if err != nil {
		return err
	}
	verb := args[0]
	if verb != "add" && verb != "remove" {
		return fmt.Errorf("unknown action %q (use add or remove)", verb)
	}

	form := store.LoadForm()
	if err := edit(form, verb, args[1]); err != nil {
		return err
	}
	if err := store.SaveForm(form); err != nil {
		return err
	}
	fmt.Print(internal.RenderCompanyForm(form))
	return nil
}

func mergeCompanyFlags(cmd *cobra.Command, form *internal.CompanyForm) {
	if cmd.Flags().Changed("name") {
		form.Name = companyName
	}
	if cmd.Flags().Changed("turnover") {
		form.AnnualTurnover = companyTurnover
	}
	if cmd.Flags().Changed("years") {
		form.YearsInOperation = companyYears
	}
	if cmd.Flags().Changed("net-worth") {
		form.NetWorth = companyNetWorth
	}
	if cmd.Flags().Changed("gst") {
		form.GSTNumber = companyGST
	}
	if cmd.Flags().Changed("pan") {
		form.PANNumber = companyPAN
	}
	if cmd.Flags().Changed("reg") {
		form.RegistrationNumber = companyReg
	}
	if cmd.Flags().Changed("udyam") {
		form.UdyamNumber = companyUdyam
	}
	if cmd.Flags().Changed("msme") {
		form.MSMECategory = companyMSME
	}
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.AddCommand(companyShowCmd)
	companyCmd.AddCommand(companySaveCmd)
	companyCmd.AddCommand(companyCertCmd)
	companyCmd.AddCommand(companyDocCmd)
	companyCmd.AddCommand(companyProjectCmd)

	companySaveCmd.Flags().StringVar(&companyName, "name", "", "Company name (required)")
	companySaveCmd.Flags().Float64Var(&companyTurnover, "turnover", 0, "Annual turnover in lakhs (required)")
	companySaveCmd.Flags().IntVar(&companyYears, "years", 0, "Years in operation (required)")
	companySaveCmd.Flags().Float64Var(&companyNetWorth, "net-worth", 0, "Net worth in lakhs")
	companySaveCmd.Flags().StringVar(&companyGST, "gst", "", "GST number")
	companySaveCmd.Flags().StringVar(&companyPAN, "pan", "", "PAN number")
	companySaveCmd.Flags().StringVar(&companyReg, "reg", "", "Registration number")
	companySaveCmd.Flags().StringVar(&companyUdyam, "udyam", "", "Udyam number")
	companySaveCmd.Flags().StringVar(&companyMSME, "msme", "", "MSME category")

	companyProjectCmd.Flags().StringVar(&projectName, "project-name", "", "Project name")
	companyProjectCmd.Flags().StringVar(&projectClient, "client", "", "Project client")
	companyProjectCmd.Flags().Float64Var(&projectValue, "value", 0, "Project value in lakhs")
	companyProjectCmd.Flags().IntVar(&projectYear, "year", 0, "Project year (defaults to the current year)")
}
