/*
Package sheets merges the spreadsheets dropped into a Google Drive folder into a single target Google
Sheets worksheet.

sheets-merge can be used from the command line but is really intended to be run from a cron job. Each
run appends the rows of every spreadsheet (Google Sheets or xlsx) in the source folder that has not
already been merged to the target sheet, tagging each row with the name of its source file, and then
joins the target sheet with a 'manager' sheet keyed on the source file name.

sheets-merge supports the following commands:

  - sync, to merge the new files and sync the manager sheet (the default command)
  - reset, to clear the target sheet
  - get, to download the target or manager sheet as a TSV file
  - version, to display the application version

sheets-reset is a standalone equivalent of 'sheets-merge reset'.
*/
package sheets
